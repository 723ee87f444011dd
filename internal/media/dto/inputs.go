package dto

import "go-controls/pkg/security"

type MediaAccountsInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
	}
}

type MediaFoldersInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		MediaAccountGuid string `json:"mediaAccountGuid" minLength:"1"`
	}
}

type MediaElementsInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		MediaFolderGuid string `json:"mediaFolderGuid" minLength:"1"`
	}
}

// MediaTreeInput restores a picker selection; the most specific guid given wins
type MediaTreeInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		MediaAccountGuid string `json:"mediaAccountGuid,omitempty"`
		MediaFolderGuid  string `json:"mediaFolderGuid,omitempty"`
		MediaElementGuid string `json:"mediaElementGuid,omitempty"`
	}
}

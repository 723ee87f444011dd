package dto

import "go-controls/pkg/security"

// ChildrenInput lists the pages below guid, or below rootPageGuid when guid is empty
type ChildrenInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Guid          string   `json:"guid,omitempty"`
		RootPageGuid  string   `json:"rootPageGuid,omitempty"`
		HidePageGuids []string `json:"hidePageGuids,omitempty" doc:"Pages hidden together with their descendants"`
	}
}

// SelectedAncestorsInput asks for the pages to expand so the selection is visible
type SelectedAncestorsInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		SelectedGuids []string `json:"selectedGuids"`
		RootPageGuid  string   `json:"rootPageGuid,omitempty" doc:"Ancestors stop below this page"`
	}
}

type RoutesInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		PageGuid string `json:"pageGuid" minLength:"1"`
	}
}

type PageURLInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		PageGuid  string `json:"pageGuid" minLength:"1"`
		RouteGuid string `json:"routeGuid,omitempty"`
	}
}

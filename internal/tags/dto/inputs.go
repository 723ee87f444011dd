package dto

import "go-controls/pkg/security"

// EntityTagsInput lists the tags on an entity
type EntityTagsInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		EntityTypeGuid string `json:"entityTypeGuid" minLength:"1"`
		EntityKey      string `json:"entityKey" minLength:"1" doc:"Guid of the tagged entity"`
	}
}

// AvailableTagsInput searches the tags that could be applied
type AvailableTagsInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		EntityTypeGuid string `json:"entityTypeGuid" minLength:"1"`
		Name           string `json:"name,omitempty" doc:"Name prefix"`
		CategoryGuid   string `json:"categoryGuid,omitempty"`
	}
}

// CreatePersonalTagInput creates a tag owned by the caller
type CreatePersonalTagInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		EntityTypeGuid string `json:"entityTypeGuid" minLength:"1"`
		Name           string `json:"name,omitempty" maxLength:"100"`
		CategoryGuid   string `json:"categoryGuid,omitempty"`
	}
}

// TagEntityInput applies or removes a tag on an entity
type TagEntityInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		EntityTypeGuid string `json:"entityTypeGuid" minLength:"1"`
		EntityKey      string `json:"entityKey" minLength:"1"`
		TagKey         string `json:"tagKey" minLength:"1" doc:"Guid of the tag"`
	}
}

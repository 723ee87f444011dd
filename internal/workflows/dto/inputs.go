package dto

import "go-controls/pkg/security"

// WorkflowTypesInput lists workflow types, optionally of one category
type WorkflowTypesInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		CategoryGuid    string `json:"categoryGuid,omitempty"`
		IncludeInactive bool   `json:"includeInactive,omitempty"`
	}
}

package dto

import "go-controls/pkg/security"

// ChildrenInput asks for the merge fields below id; an empty id lists the roots
type ChildrenInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		ID               string   `json:"id,omitempty" doc:"Pipe separated path, e.g. Person|Campus"`
		AdditionalFields []string `json:"additionalFields,omitempty" doc:"Extra root fields such as Group, Campus or Date"`
	}
}

// FormatValueInput turns a merge field id into its template expression
type FormatValueInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		ID string `json:"id,omitempty" doc:"Pipe separated path, e.g. Person|Campus|Name"`
	}
}

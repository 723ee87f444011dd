package dto

import "go-controls/pkg/security"

// ChildrenInput asks for the accounts below parentGuid
type ChildrenInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		ParentGuid        string `json:"parentGuid,omitempty" doc:"Parent account; empty for top level accounts"`
		IncludeInactive   bool   `json:"includeInactive,omitempty"`
		DisplayPublicName bool   `json:"displayPublicName,omitempty"`
		LoadAll           bool   `json:"loadAll,omitempty" doc:"Expand the whole subtree"`
	}
}

// SearchInput searches accounts by name
type SearchInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		SearchTerm        string `json:"searchTerm,omitempty" maxLength:"100"`
		IncludeInactive   bool   `json:"includeInactive,omitempty"`
		DisplayPublicName bool   `json:"displayPublicName,omitempty"`
	}
}

// ParentGuidsInput asks for the ancestors of selected accounts
type ParentGuidsInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Guids []string `json:"guids" maxItems:"100"`
	}
}

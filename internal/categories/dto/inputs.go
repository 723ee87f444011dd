package dto

import "go-controls/pkg/security"

// ChildrenInput asks for the categories below parentGuid
type ChildrenInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		ParentGuid                string   `json:"parentGuid,omitempty"`
		EntityTypeGuid            string   `json:"entityTypeGuid" minLength:"1" doc:"Entity type the categories belong to"`
		EntityTypeQualifierColumn string   `json:"entityTypeQualifierColumn,omitempty"`
		EntityTypeQualifierValue  string   `json:"entityTypeQualifierValue,omitempty"`
		IncludeCategoryGuids      []string `json:"includeCategoryGuids,omitempty" doc:"Only these top level categories are returned"`
		ExcludeCategoryGuids      []string `json:"excludeCategoryGuids,omitempty" doc:"These categories and their subtrees are hidden"`
		LoadAll                   bool     `json:"loadAll,omitempty"`
		GetCategorizedItems       bool     `json:"getCategorizedItems,omitempty" doc:"Append the items of each category as leaves"`
		IncludeInactiveItems      bool     `json:"includeInactiveItems,omitempty"`
		DefaultIconCssClass       string   `json:"defaultIconCssClass,omitempty"`
	}
}

// SearchInput searches categories of an entity type by name
type SearchInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		EntityTypeGuid string `json:"entityTypeGuid" minLength:"1"`
		SearchTerm     string `json:"searchTerm,omitempty" maxLength:"100"`
	}
}

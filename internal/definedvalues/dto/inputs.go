package dto

import "go-controls/pkg/security"

// DefinedValuesInput lists the values of one defined type
type DefinedValuesInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		DefinedTypeGuid string `json:"definedTypeGuid" minLength:"1" doc:"Defined type whose values are listed"`
		IncludeInactive bool   `json:"includeInactive,omitempty"`
	}
}

// SaveNewValueInput adds a value to a defined type from inside the picker
type SaveNewValueInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		DefinedTypeGuid string `json:"definedTypeGuid" minLength:"1"`
		Value           string `json:"value,omitempty" maxLength:"250" doc:"Display value, unique within the type ignoring case"`
		Description     string `json:"description,omitempty" maxLength:"2000"`
	}
}

package dto

import "go-controls/pkg/security"

// EntityTypesInput lists the entity types a picker can offer
type EntityTypesInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		IncludeGlobalOption bool `json:"includeGlobalOption,omitempty" doc:"Prepend a 'None (Global)' option"`
	}
}

package dto

import "go-controls/pkg/security"

// AddressBody carries a postal address
type AddressBody struct {
	Street1    string `json:"street1,omitempty" maxLength:"100"`
	Street2    string `json:"street2,omitempty" maxLength:"100"`
	City       string `json:"city,omitempty" maxLength:"50"`
	State      string `json:"state,omitempty" maxLength:"50"`
	PostalCode string `json:"postalCode,omitempty" maxLength:"50"`
	Country    string `json:"country,omitempty" maxLength:"50"`
}

// ChildrenInput asks for named locations below a location
type ChildrenInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Guid             string `json:"guid,omitempty" doc:"Location whose children are returned"`
		RootLocationGuid string `json:"rootLocationGuid,omitempty" doc:"Used as the parent when guid is empty"`
		IncludeInactive  bool   `json:"includeInactive,omitempty"`
	}
}

// LocationsInput lists named locations for a drop down
type LocationsInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		LocationTypeValueGuid string `json:"locationTypeValueGuid,omitempty"`
		ParentLocationGuid    string `json:"parentLocationGuid,omitempty"`
		ShowCityState         bool   `json:"showCityState,omitempty"`
	}
}

// AddressInput finds or creates an address location
type AddressInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		AddressBody
	}
}

// SaveLocationInput creates a named location from the location list control
type SaveLocationInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Name                  string       `json:"name,omitempty" maxLength:"100"`
		ParentLocationGuid    string       `json:"parentLocationGuid,omitempty"`
		LocationTypeValueGuid string       `json:"locationTypeValueGuid,omitempty"`
		Address               *AddressBody `json:"address,omitempty"`
	}
}

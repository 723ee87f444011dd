package dto

import "go-controls/pkg/security"

// IssueGrantInput asks for a grant token carrying rules
type IssueGrantInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Rules      []security.GrantRule `json:"rules,omitempty"`
		TTLMinutes int                  `json:"ttlMinutes,omitempty" doc:"Lifetime in minutes, 1 to 1440"`
	}
}

// RenewGrantInput re-issues a still valid grant token
type RenewGrantInput struct {
	Body struct {
		Token      string `json:"token,omitempty"`
		TTLMinutes int    `json:"ttlMinutes,omitempty" doc:"Defaults to 60 minutes"`
	}
}

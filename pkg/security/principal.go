// Package security resolves who is calling a control endpoint and what they may touch.
package security

import (
	"strings"
)

// Actions checked against entities
const (
	ActionView         = "view"
	ActionEdit         = "edit"
	ActionAdministrate = "administrate"
)

// User is the authenticated caller as described by the login token
type User struct {
	UserID     string   `json:"user_id"`
	PersonGuid string   `json:"person_guid"`
	Name       string   `json:"name"`
	Roles      []string `json:"roles"`
}

// Principal is everything known about the caller for one request
type Principal struct {
	User  *User
	Grant *Grant
}

// IsAuthenticated reports whether a login token was presented and valid
func (p *Principal) IsAuthenticated() bool {
	return p != nil && p.User != nil
}

// PersonGuid returns the caller's person guid or "" for anonymous callers
func (p *Principal) PersonGuid() string {
	if !p.IsAuthenticated() {
		return ""
	}
	return p.User.PersonGuid
}

// subjects lists casbin subjects in priority order
func (p *Principal) subjects() []string {
	subjects := make([]string, 0, 4)
	if p.IsAuthenticated() {
		subjects = append(subjects, "user:"+p.User.UserID)
		for _, role := range p.User.Roles {
			subjects = append(subjects, "role:"+strings.ToLower(role))
		}
		subjects = append(subjects, "role:authenticated")
	}
	return append(subjects, "role:everyone")
}

// Object builds a casbin object for an entity, e.g. Object("category", guid).
// An empty key addresses every entity of the type.
func Object(entityType, key string) string {
	if key == "" {
		key = "*"
	}
	return strings.ToLower(entityType) + ":" + strings.ToLower(key)
}

// AuthHeaders is embedded in every control input to carry the login token
type AuthHeaders struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Cookie header containing controls_auth_token"`
}

// GrantOptions is embedded in request bodies that accept a security grant token
type GrantOptions struct {
	SecurityGrantToken string `json:"securityGrantToken,omitempty" doc:"Security grant token issued for this control"`
}

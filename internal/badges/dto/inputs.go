package dto

import "go-controls/pkg/security"

// BadgesInput lists the badges offered by the badge picker
type BadgesInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
	}
}

// RenderBadgesInput renders the badges of one entity
type RenderBadgesInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		EntityTypeGuid string   `json:"entityTypeGuid" minLength:"1"`
		EntityKey      string   `json:"entityKey" minLength:"1" doc:"Guid of the entity the badges describe"`
		BadgeTypeGuids []string `json:"badgeTypeGuids,omitempty" doc:"Only render these badges; empty renders every badge of the entity type"`
	}
}

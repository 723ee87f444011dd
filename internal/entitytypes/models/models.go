package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const EntityTypesCollection = "entity_types"

// GlobalEntityTypeGuid stands for "no entity type" in pickers that offer a global option
const GlobalEntityTypeGuid = "00000000-0000-0000-0000-000000000000"

// EntityType describes a kind of persisted entity and where its documents live
type EntityType struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid         string             `bson:"guid" json:"guid"`
	Name         string             `bson:"name" json:"name"`                   // e.g. "Person"
	FriendlyName string             `bson:"friendly_name" json:"friendly_name"` // shown in pickers
	Collection   string             `bson:"collection" json:"collection"`       // MongoDB collection of its entities
	IconCssClass string             `bson:"icon_css_class,omitempty" json:"icon_css_class,omitempty"`
	IsEntity     bool               `bson:"is_entity" json:"is_entity"`
	IsCommon     bool               `bson:"is_common" json:"is_common"`
}

// DisplayName prefers the friendly name
func (e EntityType) DisplayName() string {
	if e.FriendlyName != "" {
		return e.FriendlyName
	}
	return e.Name
}

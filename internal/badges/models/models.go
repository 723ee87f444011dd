package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const BadgesCollection = "badges"

// Badge renders a small indicator for an entity from an html/template
type Badge struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid           string             `bson:"guid" json:"guid"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	EntityTypeGuid string             `bson:"entity_type_guid,omitempty" json:"entity_type_guid,omitempty"` // empty applies to every type
	Template       string             `bson:"template" json:"template"`
	CssClass       string             `bson:"css_class,omitempty" json:"css_class,omitempty"`
	Order          int                `bson:"order" json:"order"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
}

func (b Badge) SortOrder() int   { return b.Order }
func (b Badge) SortText() string { return b.Name }

// AppliesTo reports whether the badge can render for entities of the type
func (b Badge) AppliesTo(entityTypeGuid string) bool {
	return b.EntityTypeGuid == "" || b.EntityTypeGuid == entityTypeGuid
}

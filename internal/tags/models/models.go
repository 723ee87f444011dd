package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TagsCollection        = "tags"
	TaggedItemsCollection = "tagged_items"
)

// Tag is a label that can be put on entities of one type. Tags without an
// owner belong to the organization, the others are personal.
type Tag struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid            string             `bson:"guid" json:"guid"`
	Name            string             `bson:"name" json:"name"`
	NameKey         string             `bson:"name_key" json:"-"` // lower-cased name
	EntityTypeGuid  string             `bson:"entity_type_guid" json:"entity_type_guid"`
	OwnerPersonGuid string             `bson:"owner_person_guid,omitempty" json:"owner_person_guid,omitempty"`
	CategoryGuid    string             `bson:"category_guid,omitempty" json:"category_guid,omitempty"`
	BackgroundColor string             `bson:"background_color,omitempty" json:"background_color,omitempty"`
	IconCssClass    string             `bson:"icon_css_class,omitempty" json:"icon_css_class,omitempty"`
	IsActive        bool               `bson:"is_active" json:"is_active"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// IsPersonal reports whether the tag belongs to a person
func (t Tag) IsPersonal() bool {
	return t.OwnerPersonGuid != ""
}

// TaggedItem links a tag to one entity
type TaggedItem struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid                string             `bson:"guid" json:"guid"`
	TagGuid             string             `bson:"tag_guid" json:"tag_guid"`
	EntityTypeGuid      string             `bson:"entity_type_guid" json:"entity_type_guid"`
	EntityGuid          string             `bson:"entity_guid" json:"entity_guid"`
	CreatedByPersonGuid string             `bson:"created_by_person_guid,omitempty" json:"created_by_person_guid,omitempty"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	CategoriesCollection       = "categories"
	CategorizedItemsCollection = "categorized_items"
)

// DefaultIconCssClass is used for categories without their own icon
const DefaultIconCssClass = "fa fa-folder"

// Category groups entities of one entity type into a hierarchy
type Category struct {
	ID                        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid                      string             `bson:"guid" json:"guid"`
	ParentGuid                string             `bson:"parent_guid,omitempty" json:"parent_guid,omitempty"`
	EntityTypeGuid            string             `bson:"entity_type_guid" json:"entity_type_guid"`
	EntityTypeQualifierColumn string             `bson:"entity_type_qualifier_column,omitempty" json:"entity_type_qualifier_column,omitempty"`
	EntityTypeQualifierValue  string             `bson:"entity_type_qualifier_value,omitempty" json:"entity_type_qualifier_value,omitempty"`
	Name                      string             `bson:"name" json:"name"`
	Description               string             `bson:"description,omitempty" json:"description,omitempty"`
	IconCssClass              string             `bson:"icon_css_class,omitempty" json:"icon_css_class,omitempty"`
	Order                     int                `bson:"order" json:"order"`
}

// CategorizedItem is an entity filed under a category, e.g. a report or a workflow type
type CategorizedItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid           string             `bson:"guid" json:"guid"`
	CategoryGuid   string             `bson:"category_guid" json:"category_guid"`
	EntityTypeGuid string             `bson:"entity_type_guid" json:"entity_type_guid"`
	Name           string             `bson:"name" json:"name"`
	IconCssClass   string             `bson:"icon_css_class,omitempty" json:"icon_css_class,omitempty"`
	Order          int                `bson:"order" json:"order"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
}

// Scope selects the categories of one entity type, optionally narrowed by qualifier
type Scope struct {
	EntityTypeGuid  string
	QualifierColumn string
	QualifierValue  string
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefinedTypesCollection  = "defined_types"
	DefinedValuesCollection = "defined_values"
)

// DefinedType is a named list of admin-maintained values, e.g. "Marital Status"
type DefinedType struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid        string             `bson:"guid" json:"guid"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// DefinedValue is one entry of a DefinedType
type DefinedValue struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid            string             `bson:"guid" json:"guid"`
	DefinedTypeGuid string             `bson:"defined_type_guid" json:"defined_type_guid"`
	Value           string             `bson:"value" json:"value"`
	ValueKey        string             `bson:"value_key" json:"-"` // lower-cased value, unique per type
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Order           int                `bson:"order" json:"order"`
	IsActive        bool               `bson:"is_active" json:"is_active"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

func (v DefinedValue) SortOrder() int   { return v.Order }
func (v DefinedValue) SortText() string { return v.Value }

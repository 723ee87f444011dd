package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const WorkflowTypesCollection = "workflow_types"

// WorkflowType is a workflow definition that can be launched from the UI
type WorkflowType struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid         string             `bson:"guid" json:"guid"`
	Name         string             `bson:"name" json:"name"`
	CategoryGuid string             `bson:"category_guid,omitempty" json:"category_guid,omitempty"`
	IconCssClass string             `bson:"icon_css_class,omitempty" json:"icon_css_class,omitempty"`
	Order        int                `bson:"order" json:"order"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
}

func (w WorkflowType) SortOrder() int   { return w.Order }
func (w WorkflowType) SortText() string { return w.Name }

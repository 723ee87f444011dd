package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	PagesCollection      = "pages"
	PageRoutesCollection = "page_routes"
)

// Page is a node of the site's page hierarchy
type Page struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid           string             `bson:"guid" json:"guid"`
	ParentPageGuid string             `bson:"parent_page_guid,omitempty" json:"parent_page_guid,omitempty"`
	InternalName   string             `bson:"internal_name" json:"internal_name"`
	PageTitle      string             `bson:"page_title,omitempty" json:"page_title,omitempty"`
	IconCssClass   string             `bson:"icon_css_class,omitempty" json:"icon_css_class,omitempty"`
	Order          int                `bson:"order" json:"order"`
}

// PageRoute is a friendly URL pointing at a page
type PageRoute struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid     string             `bson:"guid" json:"guid"`
	PageGuid string             `bson:"page_guid" json:"page_guid"`
	Route    string             `bson:"route" json:"route"` // without leading slash, e.g. "give/{campus}"
}

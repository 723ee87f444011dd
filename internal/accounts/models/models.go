package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const FinancialAccountsCollection = "financial_accounts"

// FinancialAccount is a node of the chart of accounts
type FinancialAccount struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid       string             `bson:"guid" json:"guid"`
	ParentGuid string             `bson:"parent_guid,omitempty" json:"parent_guid,omitempty"`
	Name       string             `bson:"name" json:"name"`
	PublicName string             `bson:"public_name,omitempty" json:"public_name,omitempty"`
	GlCode     string             `bson:"gl_code,omitempty" json:"gl_code,omitempty"`
	Order      int                `bson:"order" json:"order"`
	IsActive   bool               `bson:"is_active" json:"is_active"`
	IsPublic   bool               `bson:"is_public" json:"is_public"`
}

// Label returns the public name when asked for and present
func (a FinancialAccount) Label(displayPublicName bool) string {
	if displayPublicName && a.PublicName != "" {
		return a.PublicName
	}
	return a.Name
}

package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const LocationsCollection = "locations"

// Address is the postal part of a location
type Address struct {
	Street1    string `bson:"street1,omitempty" json:"street1,omitempty"`
	Street2    string `bson:"street2,omitempty" json:"street2,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string `bson:"postal_code,omitempty" json:"postal_code,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

// Key is the normalised form used to find an existing identical address
func (a Address) Key() string {
	parts := []string{a.Street1, a.Street2, a.City, a.State, a.PostalCode, a.Country}
	for i, part := range parts {
		parts[i] = strings.ToLower(strings.Join(strings.Fields(part), " "))
	}
	return strings.Join(parts, "|")
}

// IsEmpty reports whether no address line was given
func (a Address) IsEmpty() bool {
	return a.Street1 == "" && a.City == ""
}

// String formats the address on one line, e.g. "1 Main St Apt 2 Phoenix, AZ 85001"
func (a Address) String() string {
	var b strings.Builder
	for _, part := range []string{a.Street1, a.Street2, a.City} {
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(part)
	}
	if a.State != "" {
		b.WriteString(", " + a.State)
	}
	if a.PostalCode != "" {
		b.WriteString(" " + a.PostalCode)
	}
	return b.String()
}

// Location is a named place (campus, building, room) or a bare address
type Location struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid                  string             `bson:"guid" json:"guid"`
	ParentGuid            string             `bson:"parent_guid,omitempty" json:"parent_guid,omitempty"`
	Name                  string             `bson:"name,omitempty" json:"name,omitempty"`
	LocationTypeValueGuid string             `bson:"location_type_value_guid,omitempty" json:"location_type_value_guid,omitempty"`
	Address               Address            `bson:"address" json:"address"`
	AddressKey            string             `bson:"address_key,omitempty" json:"-"`
	IsActive              bool               `bson:"is_active" json:"is_active"`
	CreatedAt             time.Time          `bson:"created_at" json:"created_at"`
}

// DisplayName is the name of a named location, the address otherwise
func (l Location) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.Address.String()
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Collection names
const (
	GroupsCollection       = "groups"
	GroupTypesCollection   = "group_types"
	GroupMembersCollection = "group_members"
)

// MemberStatus is the membership state of a person in a group
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusPending  MemberStatus = "pending"
)

// GroupRole is a role defined by a group type, e.g. "Leader"
type GroupRole struct {
	Guid     string `bson:"guid" json:"guid"`
	Name     string `bson:"name" json:"name"`
	Order    int    `bson:"order" json:"order"`
	IsLeader bool   `bson:"is_leader" json:"is_leader"`
}

func (r GroupRole) SortOrder() int   { return r.Order }
func (r GroupRole) SortText() string { return r.Name }

// GroupType defines the behaviour shared by groups of one kind
type GroupType struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid                string             `bson:"guid" json:"guid"`
	Name                string             `bson:"name" json:"name"`
	Order               int                `bson:"order" json:"order"`
	IconCssClass        string             `bson:"icon_css_class,omitempty" json:"icon_css_class,omitempty"`
	IsSchedulingEnabled bool               `bson:"is_scheduling_enabled" json:"is_scheduling_enabled"`
	IsRSVPEnabled       bool               `bson:"is_rsvp_enabled" json:"is_rsvp_enabled"`
	Roles               []GroupRole        `bson:"roles" json:"roles"`
}

func (t GroupType) SortOrder() int   { return t.Order }
func (t GroupType) SortText() string { return t.Name }

// Group represents a group in the hierarchy
type Group struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid          string             `bson:"guid" json:"guid"`
	ParentGuid    string             `bson:"parent_guid,omitempty" json:"parent_guid,omitempty"`
	GroupTypeGuid string             `bson:"group_type_guid" json:"group_type_guid"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Order         int                `bson:"order" json:"order"`
	IsActive      bool               `bson:"is_active" json:"is_active"`
}

// GroupMember is a person's membership in a group
type GroupMember struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid          string             `bson:"guid" json:"guid"`
	GroupGuid     string             `bson:"group_guid" json:"group_guid"`
	PersonGuid    string             `bson:"person_guid" json:"person_guid"`
	PersonName    string             `bson:"person_name" json:"person_name"`
	GroupRoleGuid string             `bson:"group_role_guid" json:"group_role_guid"`
	Status        MemberStatus       `bson:"status" json:"status"`
}

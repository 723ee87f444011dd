package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReminderTypesCollection = "reminder_types"
	RemindersCollection     = "reminders"
)

// ReminderType is a kind of reminder that can be set on entities of one type
type ReminderType struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid           string             `bson:"guid" json:"guid"`
	Name           string             `bson:"name" json:"name"`
	EntityTypeGuid string             `bson:"entity_type_guid" json:"entity_type_guid"`
	HighlightColor string             `bson:"highlight_color,omitempty" json:"highlight_color,omitempty"`
	Order          int                `bson:"order" json:"order"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
}

func (t ReminderType) SortOrder() int   { return t.Order }
func (t ReminderType) SortText() string { return t.Name }

// Reminder is a dated note about an entity assigned to one person
type Reminder struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid                 string             `bson:"guid" json:"guid"`
	ReminderTypeGuid     string             `bson:"reminder_type_guid" json:"reminder_type_guid"`
	EntityTypeGuid       string             `bson:"entity_type_guid" json:"entity_type_guid"`
	EntityGuid           string             `bson:"entity_guid" json:"entity_guid"`
	AssignedToPersonGuid string             `bson:"assigned_to_person_guid" json:"assigned_to_person_guid"`
	CreatedByPersonGuid  string             `bson:"created_by_person_guid" json:"created_by_person_guid"`
	ReminderDate         time.Time          `bson:"reminder_date" json:"reminder_date"`
	Note                 string             `bson:"note,omitempty" json:"note,omitempty"`
	IsComplete           bool               `bson:"is_complete" json:"is_complete"`
	CompletedAt          *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	RenewPeriodDays      int                `bson:"renew_period_days,omitempty" json:"renew_period_days,omitempty"`
	RenewMaxCount        int                `bson:"renew_max_count,omitempty" json:"renew_max_count,omitempty"` // 0 renews forever
	RenewCurrentCount    int                `bson:"renew_current_count" json:"renew_current_count"`
	CreatedAt            time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsRenewing reports whether the reminder still has renewals left
func (r Reminder) IsRenewing() bool {
	if r.RenewPeriodDays <= 0 {
		return false
	}
	return r.RenewMaxCount == 0 || r.RenewCurrentCount < r.RenewMaxCount
}

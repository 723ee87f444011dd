package dto

import (
	"time"

	"go-controls/pkg/bags"
)

// ReminderBag describes one reminder in the reminder button
type ReminderBag struct {
	Guid                 string    `json:"guid"`
	ReminderTypeGuid     string    `json:"reminderTypeGuid"`
	ReminderTypeName     string    `json:"reminderTypeName"`
	HighlightColor       string    `json:"highlightColor,omitempty"`
	ReminderDate         time.Time `json:"reminderDate"`
	Note                 string    `json:"note,omitempty"`
	IsComplete           bool      `json:"isComplete"`
	IsRenewing           bool      `json:"isRenewing"`
	RenewPeriodDays      int       `json:"renewPeriodDays,omitempty"`
	RenewMaxCount        int       `json:"renewMaxCount,omitempty"`
	RenewCurrentCount    int       `json:"renewCurrentCount"`
	AssignedToPersonGuid string    `json:"assignedToPersonGuid"`
}

// RemindersBag is everything the reminder button shows for an entity
type RemindersBag struct {
	ReminderTypes []bags.ListItemBag `json:"reminderTypes"`
	Reminders     []ReminderBag      `json:"reminders"`
}

type RemindersOutput struct {
	Body RemindersBag
}

type ReminderOutput struct {
	Body ReminderBag
}

// EmptyOutput is returned by actions that have nothing to report
type EmptyOutput struct{}

package dto

import (
	"time"

	"go-controls/pkg/security"
)

// GetRemindersInput lists the caller's reminders for one entity
type GetRemindersInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		EntityTypeGuid string `json:"entityTypeGuid" minLength:"1"`
		EntityGuid     string `json:"entityGuid" minLength:"1"`
	}
}

// AddReminderInput creates a reminder on an entity
type AddReminderInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		EntityTypeGuid       string    `json:"entityTypeGuid" minLength:"1"`
		EntityGuid           string    `json:"entityGuid" minLength:"1"`
		ReminderTypeGuid     string    `json:"reminderTypeGuid" minLength:"1"`
		ReminderDate         time.Time `json:"reminderDate,omitempty"`
		Note                 string    `json:"note,omitempty" maxLength:"1000"`
		RenewPeriodDays      int       `json:"renewPeriodDays,omitempty" doc:"Days between renewals; 0 never renews"`
		RenewMaxCount        int       `json:"renewMaxCount,omitempty" doc:"Number of renewals; 0 renews forever"`
		AssignedToPersonGuid string    `json:"assignedToPersonGuid,omitempty" doc:"Defaults to the caller"`
	}
}

// ReminderActionInput identifies one reminder for complete, cancel and delete
type ReminderActionInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		ReminderGuid string `json:"reminderGuid" minLength:"1"`
	}
}

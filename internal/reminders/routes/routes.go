package routes

import (
	"context"

	"go-controls/internal/reminders/dto"
	"go-controls/internal/reminders/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the reminder button routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the reminder button routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "reminder-button-get-reminders",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/reminder-button/get-reminders",
		Summary:     "List reminders",
		Description: "Returns the caller's reminders on an entity and the reminder types that apply to it",
		Tags:        []string{"Reminder Button"},
	}, m.getRemindersHandler)

	huma.Register(api, huma.Operation{
		OperationID: "reminder-button-add-reminder",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/reminder-button/add-reminder",
		Summary:     "Add a reminder",
		Tags:        []string{"Reminder Button"},
	}, m.addReminderHandler)

	huma.Register(api, huma.Operation{
		OperationID: "reminder-button-complete-reminder",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/reminder-button/complete-reminder",
		Summary:     "Complete a reminder",
		Tags:        []string{"Reminder Button"},
	}, m.actionHandler(m.service.CompleteReminder, "Failed to complete reminder"))

	huma.Register(api, huma.Operation{
		OperationID: "reminder-button-cancel-reminder",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/reminder-button/cancel-reminder",
		Summary:     "Cancel reminder renewal",
		Tags:        []string{"Reminder Button"},
	}, m.actionHandler(m.service.CancelReminder, "Failed to cancel reminder"))

	huma.Register(api, huma.Operation{
		OperationID: "reminder-button-delete-reminder",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/reminder-button/delete-reminder",
		Summary:     "Delete a reminder",
		Tags:        []string{"Reminder Button"},
	}, m.actionHandler(m.service.DeleteReminder, "Failed to delete reminder"))
}

func (m *Module) getRemindersHandler(ctx context.Context, input *dto.GetRemindersInput) (*dto.RemindersOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	result, err := m.service.GetReminders(ctx, p, input.Body.EntityTypeGuid, input.Body.EntityGuid)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load reminders")
	}
	return &dto.RemindersOutput{Body: *result}, nil
}

func (m *Module) addReminderHandler(ctx context.Context, input *dto.AddReminderInput) (*dto.ReminderOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	reminder, err := m.service.AddReminder(ctx, p, services.AddRequest{
		EntityTypeGuid:       input.Body.EntityTypeGuid,
		EntityGuid:           input.Body.EntityGuid,
		ReminderTypeGuid:     input.Body.ReminderTypeGuid,
		ReminderDate:         input.Body.ReminderDate,
		Note:                 input.Body.Note,
		RenewPeriodDays:      input.Body.RenewPeriodDays,
		RenewMaxCount:        input.Body.RenewMaxCount,
		AssignedToPersonGuid: input.Body.AssignedToPersonGuid,
	})
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to add reminder")
	}
	return &dto.ReminderOutput{Body: *reminder}, nil
}

type reminderAction func(ctx context.Context, p *security.Principal, guid string) error

// actionHandler builds the handler shared by complete, cancel and delete
func (m *Module) actionHandler(action reminderAction, failure string) func(context.Context, *dto.ReminderActionInput) (*dto.EmptyOutput, error) {
	return func(ctx context.Context, input *dto.ReminderActionInput) (*dto.EmptyOutput, error) {
		p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)
		if err := action(ctx, p, input.Body.ReminderGuid); err != nil {
			return nil, handlers.ToHumaError(err, failure)
		}
		return &dto.EmptyOutput{}, nil
	}
}

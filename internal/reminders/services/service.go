package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	etmodels "go-controls/internal/entitytypes/models"
	"go-controls/internal/reminders/dto"
	"go-controls/internal/reminders/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"

	"github.com/google/uuid"
)

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	ReminderTypes(ctx context.Context, entityTypeGuid string) ([]models.ReminderType, error)
	GetReminderType(ctx context.Context, guid string) (*models.ReminderType, error)
	Reminders(ctx context.Context, entityTypeGuid, entityGuid, personGuid string) ([]models.Reminder, error)
	CompletedRenewing(ctx context.Context) ([]models.Reminder, error)
	GetReminder(ctx context.Context, guid string) (*models.Reminder, error)
	InsertReminder(ctx context.Context, reminder *models.Reminder) error
	UpdateReminder(ctx context.Context, reminder *models.Reminder) error
	RenewReminder(ctx context.Context, reminder *models.Reminder, previousCount int) (bool, error)
	DeleteReminder(ctx context.Context, guid string) error
}

// EntityLoader resolves an entity of a given type; the entity types service implements it
type EntityLoader interface {
	LoadEntity(ctx context.Context, entityTypeGuid, entityGuid string) (*etmodels.EntityType, map[string]interface{}, error)
}

// AddRequest carries the fields of a new reminder
type AddRequest struct {
	EntityTypeGuid       string
	EntityGuid           string
	ReminderTypeGuid     string
	ReminderDate         time.Time
	Note                 string
	RenewPeriodDays      int
	RenewMaxCount        int
	AssignedToPersonGuid string
}

// Service handles business logic for the reminder button
type Service struct {
	store    Store
	entities EntityLoader
	now      func() time.Time
}

// NewService creates a new service instance
func NewService(store Store, entities EntityLoader) *Service {
	return &Service{store: store, entities: entities, now: time.Now}
}

func requirePerson(p *security.Principal) (string, error) {
	if p.PersonGuid() == "" {
		return "", fmt.Errorf("reminders need a signed in person: %w", handlers.ErrUnauthorized)
	}
	return p.PersonGuid(), nil
}

func toBag(reminder models.Reminder, types map[string]models.ReminderType) dto.ReminderBag {
	reminderType := types[reminder.ReminderTypeGuid]
	return dto.ReminderBag{
		Guid:                 reminder.Guid,
		ReminderTypeGuid:     reminder.ReminderTypeGuid,
		ReminderTypeName:     reminderType.Name,
		HighlightColor:       reminderType.HighlightColor,
		ReminderDate:         reminder.ReminderDate,
		Note:                 reminder.Note,
		IsComplete:           reminder.IsComplete,
		IsRenewing:           reminder.IsRenewing(),
		RenewPeriodDays:      reminder.RenewPeriodDays,
		RenewMaxCount:        reminder.RenewMaxCount,
		RenewCurrentCount:    reminder.RenewCurrentCount,
		AssignedToPersonGuid: reminder.AssignedToPersonGuid,
	}
}

// GetReminders returns the reminder types of the entity type and the caller's reminders on the entity
func (s *Service) GetReminders(ctx context.Context, p *security.Principal, entityTypeGuid, entityGuid string) (*dto.RemindersBag, error) {
	personGuid, err := requirePerson(p)
	if err != nil {
		return nil, err
	}

	types, err := s.store.ReminderTypes(ctx, entityTypeGuid)
	if err != nil {
		return nil, err
	}
	bags.SortByOrderThenText(types)

	byGuid := make(map[string]models.ReminderType, len(types))
	result := &dto.RemindersBag{ReminderTypes: make([]bags.ListItemBag, 0, len(types))}
	for _, reminderType := range types {
		byGuid[reminderType.Guid] = reminderType
		result.ReminderTypes = append(result.ReminderTypes, bags.ListItemBag{Value: reminderType.Guid, Text: reminderType.Name})
	}

	reminders, err := s.store.Reminders(ctx, entityTypeGuid, entityGuid, personGuid)
	if err != nil {
		return nil, err
	}
	result.Reminders = make([]dto.ReminderBag, 0, len(reminders))
	for _, reminder := range reminders {
		result.Reminders = append(result.Reminders, toBag(reminder, byGuid))
	}
	return result, nil
}

// AddReminder creates a reminder for the caller or for the person it is assigned to
func (s *Service) AddReminder(ctx context.Context, p *security.Principal, req AddRequest) (*dto.ReminderBag, error) {
	personGuid, err := requirePerson(p)
	if err != nil {
		return nil, err
	}
	if req.ReminderDate.IsZero() {
		return nil, fmt.Errorf("reminder date is required: %w", handlers.ErrInvalid)
	}
	if req.RenewPeriodDays < 0 || req.RenewMaxCount < 0 {
		return nil, fmt.Errorf("renewal settings cannot be negative: %w", handlers.ErrInvalid)
	}

	reminderType, err := s.store.GetReminderType(ctx, req.ReminderTypeGuid)
	if err != nil {
		return nil, err
	}
	if reminderType == nil {
		return nil, fmt.Errorf("reminder type %s: %w", req.ReminderTypeGuid, handlers.ErrNotFound)
	}
	if !strings.EqualFold(reminderType.EntityTypeGuid, req.EntityTypeGuid) {
		return nil, fmt.Errorf("reminder type %s does not apply to this entity type: %w", reminderType.Name, handlers.ErrInvalid)
	}

	if _, _, err := s.entities.LoadEntity(ctx, req.EntityTypeGuid, req.EntityGuid); err != nil {
		return nil, err
	}

	assignee := req.AssignedToPersonGuid
	if assignee == "" {
		assignee = personGuid
	}

	now := s.now()
	reminder := &models.Reminder{
		Guid:                 uuid.NewString(),
		ReminderTypeGuid:     reminderType.Guid,
		EntityTypeGuid:       req.EntityTypeGuid,
		EntityGuid:           req.EntityGuid,
		AssignedToPersonGuid: assignee,
		CreatedByPersonGuid:  personGuid,
		ReminderDate:         req.ReminderDate,
		Note:                 strings.TrimSpace(req.Note),
		RenewPeriodDays:      req.RenewPeriodDays,
		RenewMaxCount:        req.RenewMaxCount,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.store.InsertReminder(ctx, reminder); err != nil {
		return nil, err
	}

	bag := toBag(*reminder, map[string]models.ReminderType{reminderType.Guid: *reminderType})
	return &bag, nil
}

// assigned loads a reminder the caller is assigned to
func (s *Service) assigned(ctx context.Context, p *security.Principal, guid string) (*models.Reminder, error) {
	personGuid, err := requirePerson(p)
	if err != nil {
		return nil, err
	}

	reminder, err := s.store.GetReminder(ctx, guid)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, fmt.Errorf("reminder %s: %w", guid, handlers.ErrNotFound)
	}
	if reminder.AssignedToPersonGuid != personGuid {
		return nil, fmt.Errorf("reminder %s is assigned to someone else: %w", guid, handlers.ErrUnauthorized)
	}
	return reminder, nil
}

// CompleteReminder marks a reminder complete. Renewing reminders are re-opened by the renewal job.
func (s *Service) CompleteReminder(ctx context.Context, p *security.Principal, guid string) error {
	reminder, err := s.assigned(ctx, p, guid)
	if err != nil {
		return err
	}
	if reminder.IsComplete {
		return nil
	}

	now := s.now()
	reminder.IsComplete = true
	reminder.CompletedAt = &now
	reminder.UpdatedAt = now
	return s.store.UpdateReminder(ctx, reminder)
}

// CancelReminder stops a reminder from renewing; the reminder itself stays
func (s *Service) CancelReminder(ctx context.Context, p *security.Principal, guid string) error {
	reminder, err := s.assigned(ctx, p, guid)
	if err != nil {
		return err
	}

	reminder.RenewPeriodDays = 0
	reminder.RenewMaxCount = 0
	reminder.UpdatedAt = s.now()
	return s.store.UpdateReminder(ctx, reminder)
}

// DeleteReminder removes a reminder
func (s *Service) DeleteReminder(ctx context.Context, p *security.Principal, guid string) error {
	reminder, err := s.assigned(ctx, p, guid)
	if err != nil {
		return err
	}
	return s.store.DeleteReminder(ctx, reminder.Guid)
}

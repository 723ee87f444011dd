package services

import (
	"context"
	"fmt"

	"go-controls/internal/reminders/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for reminders and reminder types
type Repository struct {
	types     *mongo.Collection
	reminders *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		types:     db.Collection(models.ReminderTypesCollection),
		reminders: db.Collection(models.RemindersCollection),
	}
}

// ReminderTypes returns the active reminder types of an entity type
func (r *Repository) ReminderTypes(ctx context.Context, entityTypeGuid string) ([]models.ReminderType, error) {
	cursor, err := r.types.Find(ctx, bson.M{"entity_type_guid": entityTypeGuid, "is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to query reminder types: %w", err)
	}
	defer cursor.Close(ctx)

	types := []models.ReminderType{}
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode reminder types: %w", err)
	}
	return types, nil
}

// GetReminderType returns a reminder type by guid or nil when there is none
func (r *Repository) GetReminderType(ctx context.Context, guid string) (*models.ReminderType, error) {
	var reminderType models.ReminderType
	err := r.types.FindOne(ctx, bson.M{"guid": guid}).Decode(&reminderType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reminder type: %w", err)
	}
	return &reminderType, nil
}

func (r *Repository) findReminders(ctx context.Context, filter bson.M) ([]models.Reminder, error) {
	cursor, err := r.reminders.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "reminder_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer cursor.Close(ctx)

	reminders := []models.Reminder{}
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode reminders: %w", err)
	}
	return reminders, nil
}

// Reminders returns the reminders assigned to personGuid on one entity
func (r *Repository) Reminders(ctx context.Context, entityTypeGuid, entityGuid, personGuid string) ([]models.Reminder, error) {
	return r.findReminders(ctx, bson.M{
		"entity_type_guid":        entityTypeGuid,
		"entity_guid":             entityGuid,
		"assigned_to_person_guid": personGuid,
	})
}

// CompletedRenewing returns completed reminders that have a renew period
func (r *Repository) CompletedRenewing(ctx context.Context) ([]models.Reminder, error) {
	return r.findReminders(ctx, bson.M{
		"is_complete":       true,
		"renew_period_days": bson.M{"$gt": 0},
	})
}

// GetReminder returns a reminder by guid or nil when there is none
func (r *Repository) GetReminder(ctx context.Context, guid string) (*models.Reminder, error) {
	var reminder models.Reminder
	err := r.reminders.FindOne(ctx, bson.M{"guid": guid}).Decode(&reminder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	return &reminder, nil
}

// InsertReminder stores a new reminder
func (r *Repository) InsertReminder(ctx context.Context, reminder *models.Reminder) error {
	if _, err := r.reminders.InsertOne(ctx, reminder); err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

// UpdateReminder writes the mutable fields of a reminder back
func (r *Repository) UpdateReminder(ctx context.Context, reminder *models.Reminder) error {
	update := bson.M{"$set": bson.M{
		"reminder_date":       reminder.ReminderDate,
		"is_complete":         reminder.IsComplete,
		"completed_at":        reminder.CompletedAt,
		"renew_period_days":   reminder.RenewPeriodDays,
		"renew_max_count":     reminder.RenewMaxCount,
		"renew_current_count": reminder.RenewCurrentCount,
		"updated_at":          reminder.UpdatedAt,
	}}
	result, err := r.reminders.UpdateOne(ctx, bson.M{"guid": reminder.Guid}, update)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reminder %s not found", reminder.Guid)
	}
	return nil
}

// RenewReminder reopens a completed reminder with its next date. It only writes
// when the stored reminder is still complete, still renewing and at previousCount,
// and reports false when it was not.
func (r *Repository) RenewReminder(ctx context.Context, reminder *models.Reminder, previousCount int) (bool, error) {
	filter := bson.M{
		"guid":                reminder.Guid,
		"is_complete":         true,
		"renew_period_days":   bson.M{"$gt": 0},
		"renew_current_count": previousCount,
	}
	update := bson.M{"$set": bson.M{
		"reminder_date":       reminder.ReminderDate,
		"is_complete":         false,
		"completed_at":        nil,
		"renew_current_count": reminder.RenewCurrentCount,
		"updated_at":          reminder.UpdatedAt,
	}}
	result, err := r.reminders.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to renew reminder: %w", err)
	}
	return result.MatchedCount == 1, nil
}

// DeleteReminder removes a reminder
func (r *Repository) DeleteReminder(ctx context.Context, guid string) error {
	if _, err := r.reminders.DeleteOne(ctx, bson.M{"guid": guid}); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}

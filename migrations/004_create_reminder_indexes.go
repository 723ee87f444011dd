package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	Register(Migration{
		Version:     "004_create_reminder_indexes",
		Description: "Create indexes for reminder_types and reminders collections",
		Up:          up004,
		Down:        down004,
	})
}

func up004(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, map[string][]mongo.IndexModel{
		"reminder_types": {
			uniqueGuid(),
			ascending("entity_type_guid", "is_active"),
		},
		"reminders": {
			uniqueGuid(),
			ascending("entity_guid", "assigned_to_person_guid", "reminder_date"),
			// renewal job scans completed renewing reminders
			ascending("is_complete", "renew_period_days"),
		},
	})
}

func down004(ctx context.Context, db *mongo.Database) error {
	return dropIndexes(ctx, db, "reminder_types", "reminders")
}

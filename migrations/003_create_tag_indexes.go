package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register(Migration{
		Version:     "003_create_tag_indexes",
		Description: "Create indexes for tags and tagged_items collections",
		Up:          up003,
		Down:        down003,
	})
}

func up003(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, map[string][]mongo.IndexModel{
		"tags": {
			uniqueGuid(),
			// A name is unique per entity type and owner; organization tags have no owner
			{
				Keys: bson.D{
					{Key: "entity_type_guid", Value: 1},
					{Key: "owner_person_guid", Value: 1},
					{Key: "name_key", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
		},
		"tagged_items": {
			uniqueGuid(),
			{
				Keys:    bson.D{{Key: "tag_guid", Value: 1}, {Key: "entity_guid", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			ascending("entity_type_guid", "entity_guid"),
		},
	})
}

func down003(ctx context.Context, db *mongo.Database) error {
	return dropIndexes(ctx, db, "tags", "tagged_items")
}

package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register(Migration{
		Version:     "002_create_group_indexes",
		Description: "Create indexes for groups, group_types and group_members collections",
		Up:          up002,
		Down:        down002,
	})
}

func up002(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, map[string][]mongo.IndexModel{
		"groups": {
			uniqueGuid(),
			ascending("parent_guid", "order"),
			ascending("group_type_guid"),
		},
		"group_types": {
			uniqueGuid(),
			ascending("order"),
		},
		"group_members": {
			uniqueGuid(),
			{
				Keys:    bson.D{{Key: "group_guid", Value: 1}, {Key: "person_guid", Value: 1}, {Key: "group_role_guid", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			ascending("group_guid", "person_name"),
		},
	})
}

func down002(ctx context.Context, db *mongo.Database) error {
	return dropIndexes(ctx, db, "groups", "group_types", "group_members")
}

package migrations

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const definedValueKeyIndex = "defined_type_guid_value_key_unique"

func init() {
	Register(Migration{
		Version:     "008_create_defined_value_key_index",
		Description: "Make defined values unique per type by their lower-cased value",
		Up:          up008,
		Down:        down008,
	})
}

// definedValueKeyIndexes rejects a second value with the same key even when two saves race
func definedValueKeyIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		"defined_values": {
			{
				Keys: bson.D{
					{Key: "defined_type_guid", Value: 1},
					{Key: "value_key", Value: 1},
				},
				Options: options.Index().
					SetName(definedValueKeyIndex).
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"value_key": bson.M{"$type": "string"}}),
			},
		},
	}
}

func up008(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, definedValueKeyIndexes())
}

func down008(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection("defined_values").Indexes().DropOne(ctx, definedValueKeyIndex); err != nil {
		return fmt.Errorf("failed to drop %s: %w", definedValueKeyIndex, err)
	}
	return nil
}

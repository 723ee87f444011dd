package migrations

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// isIndexExistsError checks if error is due to index already existing
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return mongo.IsDuplicateKeyError(err) ||
		strings.Contains(errStr, "already exists") ||
		strings.Contains(errStr, "IndexKeySpecsConflict") ||
		strings.Contains(errStr, "IndexOptionsConflict") ||
		strings.Contains(errStr, "equivalent index already exists")
}

// uniqueGuid is the index every entity collection gets
func uniqueGuid() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "guid", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

func ascending(fields ...string) mongo.IndexModel {
	keys := make(bson.D, 0, len(fields))
	for _, field := range fields {
		keys = append(keys, bson.E{Key: field, Value: 1})
	}
	return mongo.IndexModel{Keys: keys}
}

// createIndexes creates indexes per collection, ignoring ones that already exist
func createIndexes(ctx context.Context, db *mongo.Database, indexes map[string][]mongo.IndexModel) error {
	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil && !isIndexExistsError(err) {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

// dropIndexes drops all indexes except _id on each collection
func dropIndexes(ctx context.Context, db *mongo.Database, collections ...string) error {
	for _, collection := range collections {
		if _, err := db.Collection(collection).Indexes().DropAll(ctx); err != nil {
			return fmt.Errorf("failed to drop indexes on %s: %w", collection, err)
		}
	}
	return nil
}

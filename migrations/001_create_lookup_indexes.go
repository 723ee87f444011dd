package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register(Migration{
		Version:     "001_create_lookup_indexes",
		Description: "Create indexes for entity types, defined values, categories, accounts and locations",
		Up:          up001,
		Down:        down001,
	})
}

var lookupCollections = []string{
	"entity_types", "defined_types", "defined_values", "categories",
	"categorized_items", "financial_accounts", "locations",
}

func up001(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, map[string][]mongo.IndexModel{
		"entity_types": {
			uniqueGuid(),
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		"defined_types": {uniqueGuid()},
		"defined_values": {
			uniqueGuid(),
			ascending("defined_type_guid", "order", "value"),
		},
		"categories": {
			uniqueGuid(),
			ascending("entity_type_guid", "parent_guid", "order"),
			ascending("name"),
		},
		"categorized_items": {
			uniqueGuid(),
			ascending("category_guid", "order"),
		},
		"financial_accounts": {
			uniqueGuid(),
			ascending("parent_guid", "is_active"),
			ascending("gl_code"),
		},
		"locations": {
			uniqueGuid(),
			ascending("parent_guid"),
			// Unnamed address locations are looked up by their normalized address
			{
				Keys:    bson.D{{Key: "address_key", Value: 1}},
				Options: options.Index().SetSparse(true),
			},
		},
	})
}

func down001(ctx context.Context, db *mongo.Database) error {
	return dropIndexes(ctx, db, lookupCollections...)
}

package migrations

import (
	"context"
	"fmt"

	"go-controls/pkg/security"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	Register(Migration{
		Version:     "007_seed_security_policies",
		Description: "Create casbin policy indexes and seed the default authorization policies",
		Up:          up007,
		Down:        down007,
	})
}

func up007(ctx context.Context, db *mongo.Database) error {
	if err := createIndexes(ctx, db, map[string][]mongo.IndexModel{
		"casbin_policies": {ascending("ptype", "v0", "v1")},
	}); err != nil {
		return err
	}

	authorizer, err := security.NewAuthorizer(db.Client(), db.Name())
	if err != nil {
		return err
	}
	if err := authorizer.SeedDefaults(); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	return nil
}

func down007(ctx context.Context, db *mongo.Database) error {
	for _, policy := range security.DefaultPolicies {
		filter := bson.M{"ptype": "p", "v0": policy[0], "v1": policy[1], "v2": policy[2], "v3": policy[3]}
		if _, err := db.Collection("casbin_policies").DeleteMany(ctx, filter); err != nil {
			return err
		}
	}
	return dropIndexes(ctx, db, "casbin_policies")
}

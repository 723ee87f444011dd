package services

import (
	"context"
	"fmt"

	"go-controls/internal/definedvalues/models"
	"go-controls/pkg/handlers"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for defined types and values
type Repository struct {
	types  *mongo.Collection
	values *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		types:  db.Collection(models.DefinedTypesCollection),
		values: db.Collection(models.DefinedValuesCollection),
	}
}

// FindType returns the defined type or nil when it does not exist
func (r *Repository) FindType(ctx context.Context, guid string) (*models.DefinedType, error) {
	var definedType models.DefinedType
	err := r.types.FindOne(ctx, bson.M{"guid": guid}).Decode(&definedType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get defined type: %w", err)
	}
	return &definedType, nil
}

// ListValues returns every value of a type, active or not
func (r *Repository) ListValues(ctx context.Context, definedTypeGuid string) ([]models.DefinedValue, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "value", Value: 1}})
	cursor, err := r.values.Find(ctx, bson.M{"defined_type_guid": definedTypeGuid}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list defined values: %w", err)
	}
	defer cursor.Close(ctx)

	values := []models.DefinedValue{}
	if err := cursor.All(ctx, &values); err != nil {
		return nil, fmt.Errorf("failed to decode defined values: %w", err)
	}
	return values, nil
}

// InsertValue stores a new value; the unique (type, value_key) index reports duplicates
func (r *Repository) InsertValue(ctx context.Context, value *models.DefinedValue) error {
	if _, err := r.values.InsertOne(ctx, value); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("value '%s' already exists: %w", value.Value, handlers.ErrConflict)
		}
		return fmt.Errorf("failed to create defined value: %w", err)
	}
	return nil
}

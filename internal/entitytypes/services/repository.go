package services

import (
	"context"
	"fmt"

	"go-controls/internal/entitytypes/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for entity types and the entities they describe
type Repository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		db:         db,
		collection: db.Collection(models.EntityTypesCollection),
	}
}

// List returns every registered entity type
func (r *Repository) List(ctx context.Context) ([]models.EntityType, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "friendly_name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list entity types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []models.EntityType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode entity types: %w", err)
	}
	return types, nil
}

// FindEntity loads one entity document by guid; a missing document returns nil, nil
func (r *Repository) FindEntity(ctx context.Context, collection, guid string) (map[string]interface{}, error) {
	var doc bson.M
	err := r.db.Collection(collection).FindOne(ctx, bson.M{"guid": guid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load entity from %s: %w", collection, err)
	}
	delete(doc, "_id")
	return doc, nil
}

package services

import (
	"context"
	"fmt"

	catmodels "go-controls/internal/categories/models"
	"go-controls/internal/workflows/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for workflow types
type Repository struct {
	types      *mongo.Collection
	categories *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		types:      db.Collection(models.WorkflowTypesCollection),
		categories: db.Collection(catmodels.CategoriesCollection),
	}
}

// WorkflowTypes returns workflow types, of one category when categoryGuid is set
func (r *Repository) WorkflowTypes(ctx context.Context, categoryGuid string, includeInactive bool) ([]models.WorkflowType, error) {
	filter := bson.M{}
	if categoryGuid != "" {
		filter["category_guid"] = categoryGuid
	}
	if !includeInactive {
		filter["is_active"] = true
	}

	cursor, err := r.types.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query workflow types: %w", err)
	}
	defer cursor.Close(ctx)

	types := []models.WorkflowType{}
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode workflow types: %w", err)
	}
	return types, nil
}

// CategoryNames maps category guids to names
func (r *Repository) CategoryNames(ctx context.Context, guids []string) (map[string]string, error) {
	names := make(map[string]string, len(guids))
	if len(guids) == 0 {
		return names, nil
	}

	opts := options.Find().SetProjection(bson.M{"guid": 1, "name": 1})
	cursor, err := r.categories.Find(ctx, bson.M{"guid": bson.M{"$in": guids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query workflow categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []catmodels.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode workflow categories: %w", err)
	}
	for _, c := range categories {
		names[c.Guid] = c.Name
	}
	return names, nil
}

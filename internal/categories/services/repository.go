package services

import (
	"context"
	"fmt"
	"regexp"

	"go-controls/internal/categories/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for categories and categorized items
type Repository struct {
	categories *mongo.Collection
	items      *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		categories: db.Collection(models.CategoriesCollection),
		items:      db.Collection(models.CategorizedItemsCollection),
	}
}

func scopeFilter(scope models.Scope) bson.M {
	filter := bson.M{"entity_type_guid": scope.EntityTypeGuid}
	if scope.QualifierColumn != "" {
		filter["entity_type_qualifier_column"] = scope.QualifierColumn
		filter["entity_type_qualifier_value"] = scope.QualifierValue
	}
	return filter
}

func (r *Repository) findCategories(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Category, error) {
	cursor, err := r.categories.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// Children returns the categories of scope directly below parentGuid
func (r *Repository) Children(ctx context.Context, scope models.Scope, parentGuid string) ([]models.Category, error) {
	filter := scopeFilter(scope)
	if parentGuid == "" {
		filter["$or"] = bson.A{
			bson.M{"parent_guid": bson.M{"$exists": false}},
			bson.M{"parent_guid": ""},
		}
	} else {
		filter["parent_guid"] = parentGuid
	}
	return r.findCategories(ctx, filter)
}

// Search matches category names of an entity type, case-insensitive
func (r *Repository) Search(ctx context.Context, entityTypeGuid, term string, limit int) ([]models.Category, error) {
	filter := bson.M{
		"entity_type_guid": entityTypeGuid,
		"name":             primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"},
	}
	return r.findCategories(ctx, filter, options.Find().SetLimit(int64(limit)).SetSort(bson.D{{Key: "name", Value: 1}}))
}

// Get returns one category or nil when it does not exist
func (r *Repository) Get(ctx context.Context, guid string) (*models.Category, error) {
	var category models.Category
	err := r.categories.FindOne(ctx, bson.M{"guid": guid}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// Items returns the items filed under a category
func (r *Repository) Items(ctx context.Context, categoryGuid string, includeInactive bool) ([]models.CategorizedItem, error) {
	filter := bson.M{"category_guid": categoryGuid}
	if !includeInactive {
		filter["is_active"] = true
	}
	cursor, err := r.items.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query categorized items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.CategorizedItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode categorized items: %w", err)
	}
	return items, nil
}

package services

import (
	"context"
	"fmt"

	"go-controls/internal/pages/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for pages and page routes
type Repository struct {
	pages  *mongo.Collection
	routes *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		pages:  db.Collection(models.PagesCollection),
		routes: db.Collection(models.PageRoutesCollection),
	}
}

// Children returns the pages directly below parentGuid; "" returns the top level pages
func (r *Repository) Children(ctx context.Context, parentGuid string) ([]models.Page, error) {
	filter := bson.M{"parent_page_guid": parentGuid}
	if parentGuid == "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"parent_page_guid": bson.M{"$exists": false}},
			bson.M{"parent_page_guid": ""},
		}}
	}

	cursor, err := r.pages.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer cursor.Close(ctx)

	pages := []models.Page{}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, fmt.Errorf("failed to decode pages: %w", err)
	}
	return pages, nil
}

// Get returns a page by guid or nil when there is none
func (r *Repository) Get(ctx context.Context, guid string) (*models.Page, error) {
	var page models.Page
	err := r.pages.FindOne(ctx, bson.M{"guid": guid}).Decode(&page)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return &page, nil
}

// Routes returns the routes of a page ordered by route
func (r *Repository) Routes(ctx context.Context, pageGuid string) ([]models.PageRoute, error) {
	cursor, err := r.routes.Find(ctx, bson.M{"page_guid": pageGuid}, options.Find().SetSort(bson.D{{Key: "route", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query page routes: %w", err)
	}
	defer cursor.Close(ctx)

	routes := []models.PageRoute{}
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode page routes: %w", err)
	}
	return routes, nil
}

package services

import (
	"context"
	"fmt"

	"go-controls/internal/locations/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository handles database operations for locations
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(models.LocationsCollection)}
}

func (r *Repository) find(ctx context.Context, filter bson.M) ([]models.Location, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer cursor.Close(ctx)

	locations := []models.Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}
	return locations, nil
}

func parentFilter(filter bson.M, parentGuid string) bson.M {
	if parentGuid == "" {
		filter["$or"] = bson.A{
			bson.M{"parent_guid": bson.M{"$exists": false}},
			bson.M{"parent_guid": ""},
		}
	} else {
		filter["parent_guid"] = parentGuid
	}
	return filter
}

// NamedChildren returns the named locations directly below parentGuid
func (r *Repository) NamedChildren(ctx context.Context, parentGuid string, includeInactive bool) ([]models.Location, error) {
	filter := parentFilter(bson.M{"name": bson.M{"$nin": bson.A{nil, ""}}}, parentGuid)
	if !includeInactive {
		filter["is_active"] = true
	}
	return r.find(ctx, filter)
}

// ListNamed returns active named locations, optionally of one type and under one parent
func (r *Repository) ListNamed(ctx context.Context, locationTypeValueGuid, parentGuid string) ([]models.Location, error) {
	filter := bson.M{"name": bson.M{"$nin": bson.A{nil, ""}}, "is_active": true}
	if locationTypeValueGuid != "" {
		filter["location_type_value_guid"] = locationTypeValueGuid
	}
	if parentGuid != "" {
		filter["parent_guid"] = parentGuid
	}
	return r.find(ctx, filter)
}

// FindByAddressKey returns the address location with the given normalised key, or nil
func (r *Repository) FindByAddressKey(ctx context.Context, key string) (*models.Location, error) {
	return r.findOne(ctx, bson.M{"address_key": key, "name": bson.M{"$in": bson.A{nil, ""}}})
}

// Get returns one location or nil when it does not exist
func (r *Repository) Get(ctx context.Context, guid string) (*models.Location, error) {
	return r.findOne(ctx, bson.M{"guid": guid})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*models.Location, error) {
	var location models.Location
	err := r.collection.FindOne(ctx, filter).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &location, nil
}

// Insert stores a new location
func (r *Repository) Insert(ctx context.Context, location *models.Location) error {
	if _, err := r.collection.InsertOne(ctx, location); err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

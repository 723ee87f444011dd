package services

import (
	"context"
	"fmt"

	"go-controls/internal/groups/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for groups, group types and members
type Repository struct {
	groups  *mongo.Collection
	types   *mongo.Collection
	members *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		groups:  db.Collection(models.GroupsCollection),
		types:   db.Collection(models.GroupTypesCollection),
		members: db.Collection(models.GroupMembersCollection),
	}
}

// Children returns the groups directly below parentGuid
func (r *Repository) Children(ctx context.Context, parentGuid string, includeInactive bool) ([]models.Group, error) {
	filter := bson.M{"parent_guid": parentGuid}
	if parentGuid == "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"parent_guid": bson.M{"$exists": false}},
			bson.M{"parent_guid": ""},
		}}
	}
	if !includeInactive {
		filter["is_active"] = true
	}

	cursor, err := r.groups.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer cursor.Close(ctx)

	groups := []models.Group{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode groups: %w", err)
	}
	return groups, nil
}

// GetGroup returns one group or nil when it does not exist
func (r *Repository) GetGroup(ctx context.Context, guid string) (*models.Group, error) {
	var group models.Group
	err := r.groups.FindOne(ctx, bson.M{"guid": guid}).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return &group, nil
}

// GroupTypes returns every group type
func (r *Repository) GroupTypes(ctx context.Context) ([]models.GroupType, error) {
	cursor, err := r.types.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query group types: %w", err)
	}
	defer cursor.Close(ctx)

	types := []models.GroupType{}
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode group types: %w", err)
	}
	return types, nil
}

// Members returns the members of a group that are not inactive
func (r *Repository) Members(ctx context.Context, groupGuid string) ([]models.GroupMember, error) {
	filter := bson.M{"group_guid": groupGuid, "status": bson.M{"$ne": models.MemberStatusInactive}}
	cursor, err := r.members.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "person_name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query group members: %w", err)
	}
	defer cursor.Close(ctx)

	members := []models.GroupMember{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode group members: %w", err)
	}
	return members, nil
}

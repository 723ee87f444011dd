package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go-controls/internal/tags/models"
	"go-controls/pkg/handlers"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for tags and tagged items
type Repository struct {
	tags  *mongo.Collection
	items *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		tags:  db.Collection(models.TagsCollection),
		items: db.Collection(models.TaggedItemsCollection),
	}
}

// ownedBy matches organization tags and the personal tags of personGuid
func ownedBy(personGuid string) bson.M {
	owners := bson.A{bson.M{"owner_person_guid": bson.M{"$exists": false}}, bson.M{"owner_person_guid": ""}}
	if personGuid != "" {
		owners = append(owners, bson.M{"owner_person_guid": personGuid})
	}
	return bson.M{"$or": owners}
}

func (r *Repository) findTags(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Tag, error) {
	cursor, err := r.tags.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer cursor.Close(ctx)

	tags := []models.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return tags, nil
}

// EntityTags returns the tags on an entity that personGuid may see
func (r *Repository) EntityTags(ctx context.Context, entityTypeGuid, entityGuid, personGuid string) ([]models.Tag, error) {
	tagGuids, err := r.items.Distinct(ctx, "tag_guid", bson.M{"entity_type_guid": entityTypeGuid, "entity_guid": entityGuid})
	if err != nil {
		return nil, fmt.Errorf("failed to query tagged items: %w", err)
	}
	if len(tagGuids) == 0 {
		return []models.Tag{}, nil
	}

	filter := ownedBy(personGuid)
	filter["guid"] = bson.M{"$in": tagGuids}
	return r.findTags(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

// Search returns active tags of an entity type whose name starts with prefix
func (r *Repository) Search(ctx context.Context, entityTypeGuid, prefix, categoryGuid, personGuid string, limit int) ([]models.Tag, error) {
	filter := ownedBy(personGuid)
	filter["entity_type_guid"] = entityTypeGuid
	filter["is_active"] = true
	if prefix != "" {
		filter["name_key"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(strings.ToLower(prefix))}
	}
	if categoryGuid != "" {
		filter["category_guid"] = categoryGuid
	}
	return r.findTags(ctx, filter, options.Find().SetSort(bson.D{{Key: "name_key", Value: 1}}).SetLimit(int64(limit)))
}

// FindByName returns a tag of the entity type with the given name visible to personGuid, or nil
func (r *Repository) FindByName(ctx context.Context, entityTypeGuid, name, personGuid string) (*models.Tag, error) {
	filter := ownedBy(personGuid)
	filter["entity_type_guid"] = entityTypeGuid
	filter["name_key"] = strings.ToLower(name)

	tags, err := r.findTags(ctx, filter, options.Find().SetLimit(1))
	if err != nil || len(tags) == 0 {
		return nil, err
	}
	return &tags[0], nil
}

// GetTag returns one tag or nil when it does not exist
func (r *Repository) GetTag(ctx context.Context, guid string) (*models.Tag, error) {
	var tag models.Tag
	err := r.tags.FindOne(ctx, bson.M{"guid": guid}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &tag, nil
}

// InsertTag stores a new tag
func (r *Repository) InsertTag(ctx context.Context, tag *models.Tag) error {
	_, err := r.tags.InsertOne(ctx, tag)
	return insertTagError(tag.Name, err)
}

// insertTagError reports a lost race on the unique name index as a conflict
func insertTagError(name string, err error) error {
	switch {
	case err == nil:
		return nil
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("a tag named '%s' already exists: %w", name, handlers.ErrConflict)
	default:
		return fmt.Errorf("failed to create tag: %w", err)
	}
}

// AddTaggedItem links the tag to the entity unless it already is
func (r *Repository) AddTaggedItem(ctx context.Context, item *models.TaggedItem) error {
	filter := bson.M{"tag_guid": item.TagGuid, "entity_guid": item.EntityGuid}
	update := bson.M{"$setOnInsert": item}
	_, err := r.items.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return taggedItemError(err)
}

// taggedItemError treats a concurrent upsert of the same link as success
func taggedItemError(err error) error {
	if err == nil || mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return fmt.Errorf("failed to tag entity: %w", err)
}

// RemoveTaggedItem unlinks the tag from the entity
func (r *Repository) RemoveTaggedItem(ctx context.Context, tagGuid, entityGuid string) error {
	if _, err := r.items.DeleteMany(ctx, bson.M{"tag_guid": tagGuid, "entity_guid": entityGuid}); err != nil {
		return fmt.Errorf("failed to remove tag: %w", err)
	}
	return nil
}

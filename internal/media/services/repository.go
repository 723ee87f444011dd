package services

import (
	"context"
	"fmt"

	"go-controls/internal/media/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for media accounts, folders and elements
type Repository struct {
	accounts *mongo.Collection
	folders  *mongo.Collection
	elements *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		accounts: db.Collection(models.MediaAccountsCollection),
		folders:  db.Collection(models.MediaFoldersCollection),
		elements: db.Collection(models.MediaElementsCollection),
	}
}

var byName = options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

func findAll[T any](ctx context.Context, collection *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := collection.Find(ctx, filter, byName)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collection.Name(), err)
	}
	return results, nil
}

func findOne[T any](ctx context.Context, collection *mongo.Collection, guid string) (*T, error) {
	var result T
	err := collection.FindOne(ctx, bson.M{"guid": guid}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get from %s: %w", collection.Name(), err)
	}
	return &result, nil
}

// Accounts returns the active media accounts
func (r *Repository) Accounts(ctx context.Context) ([]models.MediaAccount, error) {
	return findAll[models.MediaAccount](ctx, r.accounts, bson.M{"is_active": true})
}

// Folders returns the folders of an account
func (r *Repository) Folders(ctx context.Context, accountGuid string) ([]models.MediaFolder, error) {
	return findAll[models.MediaFolder](ctx, r.folders, bson.M{"media_account_guid": accountGuid})
}

// Elements returns the elements of a folder
func (r *Repository) Elements(ctx context.Context, folderGuid string) ([]models.MediaElement, error) {
	return findAll[models.MediaElement](ctx, r.elements, bson.M{"media_folder_guid": folderGuid})
}

func (r *Repository) GetAccount(ctx context.Context, guid string) (*models.MediaAccount, error) {
	return findOne[models.MediaAccount](ctx, r.accounts, guid)
}

func (r *Repository) GetFolder(ctx context.Context, guid string) (*models.MediaFolder, error) {
	return findOne[models.MediaFolder](ctx, r.folders, guid)
}

func (r *Repository) GetElement(ctx context.Context, guid string) (*models.MediaElement, error) {
	return findOne[models.MediaElement](ctx, r.elements, guid)
}

package services

import (
	"context"
	"fmt"
	"regexp"

	"go-controls/internal/accounts/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for financial accounts
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(models.FinancialAccountsCollection)}
}

func activeFilter(filter bson.M, includeInactive bool) bson.M {
	if !includeInactive {
		filter["is_active"] = true
	}
	return filter
}

func (r *Repository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.FinancialAccount, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial accounts: %w", err)
	}
	defer cursor.Close(ctx)

	accounts := []models.FinancialAccount{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode financial accounts: %w", err)
	}
	return accounts, nil
}

// Children returns the accounts whose parent is parentGuid; "" returns top level accounts
func (r *Repository) Children(ctx context.Context, parentGuid string, includeInactive bool) ([]models.FinancialAccount, error) {
	filter := bson.M{"parent_guid": parentGuid}
	if parentGuid == "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"parent_guid": bson.M{"$exists": false}},
			bson.M{"parent_guid": ""},
		}}
	}
	return r.find(ctx, activeFilter(filter, includeInactive))
}

// HasChildren reports which of guids have at least one child
func (r *Repository) HasChildren(ctx context.Context, guids []string, includeInactive bool) (map[string]bool, error) {
	parents, err := r.collection.Distinct(ctx, "parent_guid", activeFilter(bson.M{"parent_guid": bson.M{"$in": guids}}, includeInactive))
	if err != nil {
		return nil, fmt.Errorf("failed to count child accounts: %w", err)
	}
	result := make(map[string]bool, len(parents))
	for _, parent := range parents {
		if guid, ok := parent.(string); ok {
			result[guid] = true
		}
	}
	return result, nil
}

// Search matches the term anywhere in the name or public name, case-insensitive.
// Every match is returned; the service ranks them before truncating.
func (r *Repository) Search(ctx context.Context, term string, includeInactive bool) ([]models.FinancialAccount, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"public_name": pattern},
	}}
	return r.find(ctx, activeFilter(filter, includeInactive), options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

// Get returns one account or nil when it does not exist
func (r *Repository) Get(ctx context.Context, guid string) (*models.FinancialAccount, error) {
	var account models.FinancialAccount
	err := r.collection.FindOne(ctx, bson.M{"guid": guid}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get financial account: %w", err)
	}
	return &account, nil
}

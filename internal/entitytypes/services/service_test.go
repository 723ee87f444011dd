package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-controls/internal/entitytypes/models"
	"go-controls/pkg/cache"
	"go-controls/pkg/handlers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	types    []models.EntityType
	entities map[string]map[string]interface{}
	lists    int
}

func (f *fakeStore) List(ctx context.Context) ([]models.EntityType, error) {
	f.lists++
	return f.types, nil
}

func (f *fakeStore) FindEntity(ctx context.Context, collection, guid string) (map[string]interface{}, error) {
	return f.entities[collection+"/"+guid], nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		types: []models.EntityType{
			{Guid: "t-person", Name: "Person", FriendlyName: "Person", Collection: "people", IsEntity: true, IsCommon: true},
			{Guid: "t-group", Name: "Group", FriendlyName: "Group", Collection: "groups", IsEntity: true, IsCommon: true},
			{Guid: "t-batch", Name: "FinancialBatch", FriendlyName: "Batch", Collection: "financial_batches", IsEntity: true},
			{Guid: "t-internal", Name: "Internal", IsEntity: false},
		},
		entities: map[string]map[string]interface{}{
			"people/p1": {"guid": "p1", "first_name": "Ted"},
		},
	}
}

func TestService_ListItems(t *testing.T) {
	store := newFakeStore()
	s := NewService(store, cache.New(nil, time.Minute))

	items, err := s.ListItems(context.Background(), true)
	require.NoError(t, err)

	var texts, categories []string
	for _, item := range items {
		texts = append(texts, item.Text)
		categories = append(categories, item.Category)
	}
	assert.Equal(t, []string{"None (Global)", "Group", "Person", "Batch", "Group", "Person"}, texts)
	assert.Equal(t, []string{"", "Common", "Common", "All Entities", "All Entities", "All Entities"}, categories)
	assert.Equal(t, models.GlobalEntityTypeGuid, items[0].Value)
}

func TestService_AllIsCached(t *testing.T) {
	store := newFakeStore()
	s := NewService(store, cache.New(nil, time.Minute))
	ctx := context.Background()

	_, err := s.ListItems(ctx, false)
	require.NoError(t, err)
	_, err = s.Get(ctx, "t-person")
	require.NoError(t, err)
	assert.Equal(t, 1, store.lists)

	s.Invalidate(ctx)
	_, err = s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, store.lists)
}

func TestService_LoadEntity(t *testing.T) {
	s := NewService(newFakeStore(), cache.New(nil, time.Minute))
	ctx := context.Background()

	entityType, doc, err := s.LoadEntity(ctx, "T-PERSON", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Person", entityType.Name)
	assert.Equal(t, "Ted", doc["first_name"])

	_, _, err = s.LoadEntity(ctx, "t-person", "missing")
	assert.True(t, errors.Is(err, handlers.ErrNotFound))

	_, _, err = s.LoadEntity(ctx, "t-unknown", "p1")
	assert.True(t, errors.Is(err, handlers.ErrNotFound))

	_, _, err = s.LoadEntity(ctx, "t-internal", "p1")
	assert.True(t, errors.Is(err, handlers.ErrInvalid))
}

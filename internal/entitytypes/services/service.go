package services

import (
	"context"
	"fmt"
	"strings"

	"go-controls/internal/entitytypes/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/cache"
	"go-controls/pkg/handlers"
)

const allTypesKey = "entitytypes:all"

const (
	categoryCommon = "Common"
	categoryAll    = "All Entities"
)

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	List(ctx context.Context) ([]models.EntityType, error)
	FindEntity(ctx context.Context, collection, guid string) (map[string]interface{}, error)
}

// Service answers entity type lookups for pickers and for other modules
type Service struct {
	store Store
	cache *cache.Cache
}

// NewService creates a new service instance
func NewService(store Store, c *cache.Cache) *Service {
	return &Service{store: store, cache: c}
}

// All returns every entity type, read through the cache
func (s *Service) All(ctx context.Context) ([]models.EntityType, error) {
	return cache.GetOrLoad(ctx, s.cache, allTypesKey, s.store.List)
}

// Get returns one entity type by guid
func (s *Service) Get(ctx context.Context, guid string) (*models.EntityType, error) {
	types, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range types {
		if strings.EqualFold(types[i].Guid, guid) {
			return &types[i], nil
		}
	}
	return nil, fmt.Errorf("entity type %s: %w", guid, handlers.ErrNotFound)
}

// LoadEntity returns the document of an entity of the given type
func (s *Service) LoadEntity(ctx context.Context, entityTypeGuid, entityGuid string) (*models.EntityType, map[string]interface{}, error) {
	entityType, err := s.Get(ctx, entityTypeGuid)
	if err != nil {
		return nil, nil, err
	}
	if entityType.Collection == "" {
		return nil, nil, fmt.Errorf("entity type %s has no backing collection: %w", entityType.Name, handlers.ErrInvalid)
	}

	doc, err := s.store.FindEntity(ctx, entityType.Collection, entityGuid)
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		return nil, nil, fmt.Errorf("%s %s: %w", entityType.Name, entityGuid, handlers.ErrNotFound)
	}
	return entityType, doc, nil
}

// ListItems builds the entity type picker list: common types first, then every entity type
func (s *Service) ListItems(ctx context.Context, includeGlobalOption bool) ([]bags.ListItemBag, error) {
	types, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	var common, all []bags.ListItemBag
	for _, et := range types {
		if !et.IsEntity {
			continue
		}
		if et.IsCommon {
			common = append(common, bags.ListItemBag{Value: et.Guid, Text: et.DisplayName(), Category: categoryCommon})
		}
		all = append(all, bags.ListItemBag{Value: et.Guid, Text: et.DisplayName(), Category: categoryAll})
	}
	bags.SortListItems(common)
	bags.SortListItems(all)

	items := make([]bags.ListItemBag, 0, len(common)+len(all)+1)
	if includeGlobalOption {
		items = append(items, bags.ListItemBag{Value: models.GlobalEntityTypeGuid, Text: "None (Global)"})
	}
	items = append(items, common...)
	return append(items, all...), nil
}

// Invalidate drops the cached entity type list
func (s *Service) Invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, allTypesKey)
}

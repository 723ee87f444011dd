package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-controls/internal/definedvalues/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/cache"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"

	"github.com/google/uuid"
)

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	FindType(ctx context.Context, guid string) (*models.DefinedType, error)
	ListValues(ctx context.Context, definedTypeGuid string) ([]models.DefinedValue, error)
	InsertValue(ctx context.Context, value *models.DefinedValue) error
}

// Service handles business logic for the defined value picker
type Service struct {
	store Store
	cache *cache.Cache
	authz security.Checker
	now   func() time.Time
}

// NewService creates a new service instance
func NewService(store Store, c *cache.Cache, authz security.Checker) *Service {
	return &Service{store: store, cache: c, authz: authz, now: time.Now}
}

func valuesKey(definedTypeGuid string) string {
	return cache.Key("definedvalues", strings.ToLower(definedTypeGuid))
}

func (s *Service) definedType(ctx context.Context, guid string) (*models.DefinedType, error) {
	definedType, err := s.store.FindType(ctx, guid)
	if err != nil {
		return nil, err
	}
	if definedType == nil {
		return nil, fmt.Errorf("defined type %s: %w", guid, handlers.ErrNotFound)
	}
	return definedType, nil
}

// values returns every value of the type through the cache
func (s *Service) values(ctx context.Context, definedTypeGuid string) ([]models.DefinedValue, error) {
	return cache.GetOrLoad(ctx, s.cache, valuesKey(definedTypeGuid), func(ctx context.Context) ([]models.DefinedValue, error) {
		return s.store.ListValues(ctx, definedTypeGuid)
	})
}

// GetValues lists the values of a defined type for the picker
func (s *Service) GetValues(ctx context.Context, p *security.Principal, definedTypeGuid string, includeInactive bool) ([]bags.ListItemBag, error) {
	definedType, err := s.definedType(ctx, definedTypeGuid)
	if err != nil {
		return nil, err
	}
	if !s.authz.Can(ctx, p, security.Object("definedtype", definedType.Guid), security.ActionView) {
		return nil, fmt.Errorf("viewing %s: %w", definedType.Name, handlers.ErrUnauthorized)
	}

	values, err := s.values(ctx, definedType.Guid)
	if err != nil {
		return nil, err
	}

	visible := make([]models.DefinedValue, 0, len(values))
	for _, value := range values {
		if value.IsActive || includeInactive {
			visible = append(visible, value)
		}
	}
	bags.SortByOrderThenText(visible)

	items := make([]bags.ListItemBag, len(visible))
	for i, value := range visible {
		items[i] = bags.ListItemBag{Value: value.Guid, Text: value.Value}
	}
	return items, nil
}

// SaveNewValue appends a value to the end of the type's list
func (s *Service) SaveNewValue(ctx context.Context, p *security.Principal, definedTypeGuid, value, description string) (*bags.ListItemBag, error) {
	definedType, err := s.definedType(ctx, definedTypeGuid)
	if err != nil {
		return nil, err
	}
	if !s.authz.Can(ctx, p, security.Object("definedtype", definedType.Guid), security.ActionEdit) {
		return nil, fmt.Errorf("editing %s: %w", definedType.Name, handlers.ErrUnauthorized)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("value is required: %w", handlers.ErrInvalid)
	}

	existing, err := s.store.ListValues(ctx, definedType.Guid)
	if err != nil {
		return nil, err
	}
	order := 0
	for _, v := range existing {
		if strings.EqualFold(v.Value, value) {
			return nil, fmt.Errorf("value '%s' already exists: %w", value, handlers.ErrConflict)
		}
		if v.Order >= order {
			order = v.Order + 1
		}
	}

	definedValue := &models.DefinedValue{
		Guid:            uuid.NewString(),
		DefinedTypeGuid: definedType.Guid,
		Value:           value,
		ValueKey:        strings.ToLower(value),
		Description:     strings.TrimSpace(description),
		Order:           order,
		IsActive:        true,
		CreatedAt:       s.now(),
	}
	if err := s.store.InsertValue(ctx, definedValue); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, valuesKey(definedType.Guid))
	return &bags.ListItemBag{Value: definedValue.Guid, Text: definedValue.Value}, nil
}

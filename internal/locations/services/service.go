package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-controls/internal/locations/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"
	"go-controls/pkg/tree"

	"github.com/google/uuid"
)

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	NamedChildren(ctx context.Context, parentGuid string, includeInactive bool) ([]models.Location, error)
	ListNamed(ctx context.Context, locationTypeValueGuid, parentGuid string) ([]models.Location, error)
	FindByAddressKey(ctx context.Context, key string) (*models.Location, error)
	Get(ctx context.Context, guid string) (*models.Location, error)
	Insert(ctx context.Context, location *models.Location) error
}

// Service handles business logic for the location pickers
type Service struct {
	store Store
	authz security.Checker
	now   func() time.Time
}

// NewService creates a new service instance
func NewService(store Store, authz security.Checker) *Service {
	return &Service{store: store, authz: authz, now: time.Now}
}

var allLocations = security.Object("location", "")

// Children returns the named locations below guid, or below rootGuid when guid is empty
func (s *Service) Children(ctx context.Context, p *security.Principal, guid, rootGuid string, includeInactive bool) ([]*bags.TreeItemBag, error) {
	parent := guid
	if parent == "" {
		parent = rootGuid
	}

	src := tree.SourceFunc(func(ctx context.Context, parentGuid string) ([]tree.Node, error) {
		locations, err := s.store.NamedChildren(ctx, parentGuid, includeInactive)
		if err != nil {
			return nil, err
		}
		nodes := make([]tree.Node, len(locations))
		for i, l := range locations {
			nodes[i] = tree.Node{Guid: l.Guid, ParentGuid: l.ParentGuid, Name: l.Name, IsActive: l.IsActive}
		}
		return nodes, nil
	})

	return tree.Build(ctx, src, parent, tree.Options{
		IncludeInactive: includeInactive,
		Filter: func(node tree.Node) bool {
			return s.authz.Can(ctx, p, security.Object("location", node.Guid), security.ActionView)
		},
	})
}

// List returns named locations for the location list control
func (s *Service) List(ctx context.Context, p *security.Principal, locationTypeValueGuid, parentGuid string, showCityState bool) ([]bags.ListItemBag, error) {
	locations, err := s.store.ListNamed(ctx, locationTypeValueGuid, parentGuid)
	if err != nil {
		return nil, err
	}

	items := make([]bags.ListItemBag, 0, len(locations))
	for _, l := range locations {
		if !s.authz.Can(ctx, p, security.Object("location", l.Guid), security.ActionView) {
			continue
		}
		text := l.Name
		if showCityState && l.Address.City != "" {
			text = fmt.Sprintf("%s (%s)", l.Name, strings.Trim(l.Address.City+", "+l.Address.State, ", "))
		}
		items = append(items, bags.ListItemBag{Value: l.Guid, Text: text})
	}
	bags.SortListItems(items)
	return items, nil
}

func cleanAddress(a models.Address) models.Address {
	return models.Address{
		Street1:    strings.TrimSpace(a.Street1),
		Street2:    strings.TrimSpace(a.Street2),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Country:    strings.TrimSpace(a.Country),
	}
}

// FindOrCreateAddress returns the existing location for an address or stores a new one
func (s *Service) FindOrCreateAddress(ctx context.Context, p *security.Principal, address models.Address) (*bags.ListItemBag, error) {
	if !s.authz.Can(ctx, p, allLocations, security.ActionView) {
		return nil, fmt.Errorf("using addresses: %w", handlers.ErrUnauthorized)
	}

	address = cleanAddress(address)
	if address.Street1 == "" || address.City == "" {
		return nil, fmt.Errorf("street1 and city are required: %w", handlers.ErrInvalid)
	}

	key := address.Key()
	existing, err := s.store.FindByAddressKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &bags.ListItemBag{Value: existing.Guid, Text: existing.DisplayName()}, nil
	}

	location := &models.Location{
		Guid:       uuid.NewString(),
		Address:    address,
		AddressKey: key,
		IsActive:   true,
		CreatedAt:  s.now(),
	}
	if err := s.store.Insert(ctx, location); err != nil {
		return nil, err
	}
	return &bags.ListItemBag{Value: location.Guid, Text: location.DisplayName()}, nil
}

// SaveLocationRequest describes a named location created from the location list
type SaveLocationRequest struct {
	Name                  string
	ParentLocationGuid    string
	LocationTypeValueGuid string
	Address               *models.Address
}

// SaveLocation creates a named location
func (s *Service) SaveLocation(ctx context.Context, p *security.Principal, req SaveLocationRequest) (*bags.ListItemBag, error) {
	if !s.authz.Can(ctx, p, allLocations, security.ActionEdit) {
		return nil, fmt.Errorf("editing locations: %w", handlers.ErrUnauthorized)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", handlers.ErrInvalid)
	}

	if req.ParentLocationGuid != "" {
		parent, err := s.store.Get(ctx, req.ParentLocationGuid)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("parent location %s: %w", req.ParentLocationGuid, handlers.ErrNotFound)
		}
	}

	location := &models.Location{
		Guid:                  uuid.NewString(),
		ParentGuid:            req.ParentLocationGuid,
		Name:                  name,
		LocationTypeValueGuid: req.LocationTypeValueGuid,
		IsActive:              true,
		CreatedAt:             s.now(),
	}
	if req.Address != nil {
		location.Address = cleanAddress(*req.Address)
		if !location.Address.IsEmpty() {
			location.AddressKey = location.Address.Key()
		}
	}

	if err := s.store.Insert(ctx, location); err != nil {
		return nil, err
	}
	return &bags.ListItemBag{Value: location.Guid, Text: location.Name}, nil
}

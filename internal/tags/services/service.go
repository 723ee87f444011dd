package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	etmodels "go-controls/internal/entitytypes/models"
	"go-controls/internal/tags/models"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"

	"github.com/google/uuid"
)

const availableLimit = 25

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	EntityTags(ctx context.Context, entityTypeGuid, entityGuid, personGuid string) ([]models.Tag, error)
	Search(ctx context.Context, entityTypeGuid, prefix, categoryGuid, personGuid string, limit int) ([]models.Tag, error)
	FindByName(ctx context.Context, entityTypeGuid, name, personGuid string) (*models.Tag, error)
	GetTag(ctx context.Context, guid string) (*models.Tag, error)
	InsertTag(ctx context.Context, tag *models.Tag) error
	AddTaggedItem(ctx context.Context, item *models.TaggedItem) error
	RemoveTaggedItem(ctx context.Context, tagGuid, entityGuid string) error
}

// EntityLoader resolves an entity of a given type; the entity types service implements it
type EntityLoader interface {
	LoadEntity(ctx context.Context, entityTypeGuid, entityGuid string) (*etmodels.EntityType, map[string]interface{}, error)
}

// Service handles business logic for the entity tag list
type Service struct {
	store    Store
	entities EntityLoader
	authz    security.Checker
	now      func() time.Time
}

// NewService creates a new service instance
func NewService(store Store, entities EntityLoader, authz security.Checker) *Service {
	return &Service{store: store, entities: entities, authz: authz, now: time.Now}
}

// canSee reports whether p may see the tag at all
func (s *Service) canSee(ctx context.Context, p *security.Principal, tag *models.Tag) bool {
	if tag.IsPersonal() {
		return tag.OwnerPersonGuid == p.PersonGuid()
	}
	return s.authz.Can(ctx, p, security.Object("tag", tag.Guid), security.ActionView)
}

// canApply reports whether p may put the tag on or take it off an entity
func (s *Service) canApply(ctx context.Context, p *security.Principal, tag *models.Tag) bool {
	if tag.IsPersonal() {
		return p.PersonGuid() != "" && tag.OwnerPersonGuid == p.PersonGuid()
	}
	return s.authz.Can(ctx, p, security.Object("tag", tag.Guid), security.ActionEdit)
}

// EntityTags returns the organization tags and the caller's personal tags on an entity
func (s *Service) EntityTags(ctx context.Context, p *security.Principal, entityTypeGuid, entityGuid string) ([]models.Tag, error) {
	tags, err := s.store.EntityTags(ctx, entityTypeGuid, entityGuid, p.PersonGuid())
	if err != nil {
		return nil, err
	}
	visible := make([]models.Tag, 0, len(tags))
	for i := range tags {
		if s.canSee(ctx, p, &tags[i]) {
			visible = append(visible, tags[i])
		}
	}
	return visible, nil
}

// AvailableTags returns tags whose name starts with prefix
func (s *Service) AvailableTags(ctx context.Context, p *security.Principal, entityTypeGuid, prefix, categoryGuid string) ([]models.Tag, error) {
	tags, err := s.store.Search(ctx, entityTypeGuid, strings.TrimSpace(prefix), categoryGuid, p.PersonGuid(), availableLimit)
	if err != nil {
		return nil, err
	}
	visible := make([]models.Tag, 0, len(tags))
	for i := range tags {
		if s.canSee(ctx, p, &tags[i]) {
			visible = append(visible, tags[i])
		}
	}
	return visible, nil
}

// CreatePersonalTag creates a tag owned by the caller
func (s *Service) CreatePersonalTag(ctx context.Context, p *security.Principal, entityTypeGuid, name, categoryGuid string) (*models.Tag, error) {
	if p.PersonGuid() == "" {
		return nil, fmt.Errorf("personal tags need a signed in person: %w", handlers.ErrUnauthorized)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tag name is required: %w", handlers.ErrInvalid)
	}

	existing, err := s.store.FindByName(ctx, entityTypeGuid, name, p.PersonGuid())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("a tag named '%s' already exists: %w", name, handlers.ErrConflict)
	}

	tag := &models.Tag{
		Guid:            uuid.NewString(),
		Name:            name,
		NameKey:         strings.ToLower(name),
		EntityTypeGuid:  entityTypeGuid,
		OwnerPersonGuid: p.PersonGuid(),
		CategoryGuid:    categoryGuid,
		IsActive:        true,
		CreatedAt:       s.now(),
	}
	if err := s.store.InsertTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *Service) resolve(ctx context.Context, p *security.Principal, entityTypeGuid, entityGuid, tagGuid string) (*models.Tag, error) {
	if _, _, err := s.entities.LoadEntity(ctx, entityTypeGuid, entityGuid); err != nil {
		return nil, err
	}

	tag, err := s.store.GetTag(ctx, tagGuid)
	if err != nil {
		return nil, err
	}
	if tag == nil || !strings.EqualFold(tag.EntityTypeGuid, entityTypeGuid) || !s.canSee(ctx, p, tag) {
		return nil, fmt.Errorf("tag %s: %w", tagGuid, handlers.ErrNotFound)
	}
	if !s.canApply(ctx, p, tag) {
		return nil, fmt.Errorf("applying tag %s: %w", tag.Name, handlers.ErrUnauthorized)
	}
	return tag, nil
}

// SaveTag puts a tag on an entity; tagging twice is not an error
func (s *Service) SaveTag(ctx context.Context, p *security.Principal, entityTypeGuid, entityGuid, tagGuid string) (*models.Tag, error) {
	tag, err := s.resolve(ctx, p, entityTypeGuid, entityGuid, tagGuid)
	if err != nil {
		return nil, err
	}

	item := &models.TaggedItem{
		Guid:                uuid.NewString(),
		TagGuid:             tag.Guid,
		EntityTypeGuid:      entityTypeGuid,
		EntityGuid:          entityGuid,
		CreatedByPersonGuid: p.PersonGuid(),
		CreatedAt:           s.now(),
	}
	if err := s.store.AddTaggedItem(ctx, item); err != nil {
		return nil, err
	}
	return tag, nil
}

// RemoveTag takes a tag off an entity
func (s *Service) RemoveTag(ctx context.Context, p *security.Principal, entityTypeGuid, entityGuid, tagGuid string) error {
	tag, err := s.resolve(ctx, p, entityTypeGuid, entityGuid, tagGuid)
	if err != nil {
		return err
	}
	return s.store.RemoveTaggedItem(ctx, tag.Guid, entityGuid)
}

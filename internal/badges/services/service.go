package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"go-controls/internal/badges/dto"
	"go-controls/internal/badges/models"
	etmodels "go-controls/internal/entitytypes/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/cache"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"

	"github.com/microcosm-cc/bluemonday"
)

const allBadgesKey = "badges:all"

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	List(ctx context.Context) ([]models.Badge, error)
}

// EntityLoader resolves an entity of a given type; the entity types service implements it
type EntityLoader interface {
	LoadEntity(ctx context.Context, entityTypeGuid, entityGuid string) (*etmodels.EntityType, map[string]interface{}, error)
}

// Service handles business logic for badge pickers and badge lists
type Service struct {
	store    Store
	cache    *cache.Cache
	entities EntityLoader
	authz    security.Checker
	policy   *bluemonday.Policy
}

// NewService creates a new service instance
func NewService(store Store, c *cache.Cache, entities EntityLoader, authz security.Checker) *Service {
	return &Service{
		store:    store,
		cache:    c,
		entities: entities,
		authz:    authz,
		policy:   bluemonday.UGCPolicy().AllowAttrs("class").Globally(),
	}
}

// badges returns the sorted badge list through the cache
func (s *Service) badges(ctx context.Context) ([]models.Badge, error) {
	return cache.GetOrLoad(ctx, s.cache, allBadgesKey, func(ctx context.Context) ([]models.Badge, error) {
		badges, err := s.store.List(ctx)
		if err != nil {
			return nil, err
		}
		bags.SortByOrderThenText(badges)
		return badges, nil
	})
}

func (s *Service) canView(ctx context.Context, p *security.Principal, badge models.Badge) bool {
	return s.authz.Can(ctx, p, security.Object("badge", badge.Guid), security.ActionView)
}

// PickerItems lists the active badges the caller may view
func (s *Service) PickerItems(ctx context.Context, p *security.Principal) ([]bags.ListItemBag, error) {
	badges, err := s.badges(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]bags.ListItemBag, 0, len(badges))
	for _, badge := range badges {
		if badge.IsActive && s.canView(ctx, p, badge) {
			items = append(items, bags.ListItemBag{Value: badge.Guid, Text: badge.Name})
		}
	}
	return items, nil
}

// Render renders the badges of an entity the caller may view. A badge whose
// template fails is left out and logged; the others still render.
func (s *Service) Render(ctx context.Context, p *security.Principal, entityTypeGuid, entityGuid string, only []string) ([]dto.RenderedBadgeBag, error) {
	entityType, entity, err := s.entities.LoadEntity(ctx, entityTypeGuid, entityGuid)
	if err != nil {
		return nil, err
	}
	if !s.authz.Can(ctx, p, security.Object(entityType.Name, entityGuid), security.ActionView) {
		return nil, fmt.Errorf("viewing %s %s: %w", entityType.Name, entityGuid, handlers.ErrUnauthorized)
	}

	badges, err := s.badges(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(only))
	for _, guid := range only {
		wanted[strings.ToLower(guid)] = true
	}

	rendered := make([]dto.RenderedBadgeBag, 0, len(badges))
	for _, badge := range badges {
		if !badge.IsActive || !badge.AppliesTo(entityType.Guid) {
			continue
		}
		if len(wanted) > 0 && !wanted[strings.ToLower(badge.Guid)] {
			continue
		}
		if !s.canView(ctx, p, badge) {
			continue
		}

		html, err := s.render(badge, entity)
		if err != nil {
			slog.WarnContext(ctx, "Skipping badge with a broken template", "badge", badge.Guid, "name", badge.Name, "error", err)
			continue
		}
		rendered = append(rendered, dto.RenderedBadgeBag{BadgeGuid: badge.Guid, CssClass: badge.CssClass, Html: html})
	}
	return rendered, nil
}

func (s *Service) render(badge models.Badge, entity map[string]interface{}) (string, error) {
	tmpl, err := template.New(badge.Guid).Option("missingkey=zero").Parse(badge.Template)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, entity); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return strings.TrimSpace(s.policy.Sanitize(buf.String())), nil
}

// Invalidate drops the cached badge list
func (s *Service) Invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, allBadgesKey)
}

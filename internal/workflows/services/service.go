package services

import (
	"context"
	"sort"

	"go-controls/internal/workflows/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/security"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	WorkflowTypes(ctx context.Context, categoryGuid string, includeInactive bool) ([]models.WorkflowType, error)
	CategoryNames(ctx context.Context, guids []string) (map[string]string, error)
}

// Service handles business logic for the workflow type picker
type Service struct {
	store Store
	authz security.Checker
}

// NewService creates a new service instance
func NewService(store Store, authz security.Checker) *Service {
	return &Service{store: store, authz: authz}
}

// WorkflowTypes lists the workflow types the caller may view, grouped by category name
func (s *Service) WorkflowTypes(ctx context.Context, p *security.Principal, categoryGuid string, includeInactive bool) ([]bags.ListItemBag, error) {
	types, err := s.store.WorkflowTypes(ctx, categoryGuid, includeInactive)
	if err != nil {
		return nil, err
	}

	visible := make([]models.WorkflowType, 0, len(types))
	categoryGuids := []string{}
	seen := map[string]bool{}
	for _, t := range types {
		if !s.authz.Can(ctx, p, security.Object("workflowtype", t.Guid), security.ActionView) {
			continue
		}
		visible = append(visible, t)
		if t.CategoryGuid != "" && !seen[t.CategoryGuid] {
			seen[t.CategoryGuid] = true
			categoryGuids = append(categoryGuids, t.CategoryGuid)
		}
	}

	names, err := s.store.CategoryNames(ctx, categoryGuids)
	if err != nil {
		return nil, err
	}

	bags.SortByOrderThenText(visible)
	items := make([]bags.ListItemBag, 0, len(visible))
	for _, t := range visible {
		items = append(items, bags.ListItemBag{Value: t.Guid, Text: t.Name, Category: names[t.CategoryGuid]})
	}

	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return col.CompareString(items[i].Category, items[j].Category) < 0
	})
	return items, nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"go-controls/internal/pages/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"
	"go-controls/pkg/tree"
)

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	Children(ctx context.Context, parentGuid string) ([]models.Page, error)
	Get(ctx context.Context, guid string) (*models.Page, error)
	Routes(ctx context.Context, pageGuid string) ([]models.PageRoute, error)
}

// Service handles business logic for the page picker
type Service struct {
	store Store
	authz security.Checker
}

// NewService creates a new service instance
func NewService(store Store, authz security.Checker) *Service {
	return &Service{store: store, authz: authz}
}

func (s *Service) canView(ctx context.Context, p *security.Principal, guid string) bool {
	return s.authz.Can(ctx, p, security.Object("page", guid), security.ActionView)
}

func (s *Service) page(ctx context.Context, p *security.Principal, guid string) (*models.Page, error) {
	page, err := s.store.Get(ctx, guid)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("page %s: %w", guid, handlers.ErrNotFound)
	}
	if !s.canView(ctx, p, page.Guid) {
		return nil, fmt.Errorf("viewing page %s: %w", page.InternalName, handlers.ErrUnauthorized)
	}
	return page, nil
}

// Children returns the pages below guid, or below rootPageGuid when guid is empty
func (s *Service) Children(ctx context.Context, p *security.Principal, guid, rootPageGuid string, hide []string) ([]*bags.TreeItemBag, error) {
	parent := guid
	if parent == "" {
		parent = rootPageGuid
	}

	if parent != "" {
		if err := s.requireViewableChain(ctx, p, parent); err != nil {
			return nil, err
		}
	}

	hidden := make(map[string]bool, len(hide))
	for _, h := range hide {
		hidden[strings.ToLower(h)] = true
	}

	src := tree.SourceFunc(func(ctx context.Context, parentGuid string) ([]tree.Node, error) {
		pages, err := s.store.Children(ctx, parentGuid)
		if err != nil {
			return nil, err
		}
		nodes := make([]tree.Node, len(pages))
		for i, page := range pages {
			nodes[i] = tree.Node{
				Guid:         page.Guid,
				ParentGuid:   page.ParentPageGuid,
				Name:         page.InternalName,
				Order:        page.Order,
				IsActive:     true,
				IconCssClass: page.IconCssClass,
			}
		}
		return nodes, nil
	})

	return tree.Build(ctx, src, parent, tree.Options{
		Filter: func(node tree.Node) bool {
			return !hidden[strings.ToLower(node.Guid)] && s.canView(ctx, p, node.Guid)
		},
	})
}

// requireViewableChain checks that the page exists and that the principal may
// view it and every page above it
func (s *Service) requireViewableChain(ctx context.Context, p *security.Principal, guid string) error {
	page, err := s.page(ctx, p, guid)
	if err != nil {
		return err
	}
	seen := map[string]bool{page.Guid: true}
	for next := page.ParentPageGuid; next != "" && !seen[next]; {
		seen[next] = true
		ancestor, err := s.store.Get(ctx, next)
		if err != nil {
			return err
		}
		if ancestor == nil {
			return nil
		}
		if !s.canView(ctx, p, ancestor.Guid) {
			return fmt.Errorf("viewing page %s: %w", page.InternalName, handlers.ErrUnauthorized)
		}
		next = ancestor.ParentPageGuid
	}
	return nil
}

// SelectedAncestors returns the pages to expand, root-first, so every selected page is visible.
// The walk stops below rootPageGuid when one is given.
func (s *Service) SelectedAncestors(ctx context.Context, selected []string, rootPageGuid string) ([]string, error) {
	parentOf := func(ctx context.Context, guid string) (string, error) {
		page, err := s.store.Get(ctx, guid)
		if err != nil || page == nil {
			return "", err
		}
		if rootPageGuid != "" && strings.EqualFold(page.ParentPageGuid, rootPageGuid) {
			return "", nil
		}
		return page.ParentPageGuid, nil
	}

	ancestors, err := tree.Ancestors(ctx, parentOf, selected)
	if err != nil {
		return nil, err
	}
	if ancestors == nil {
		ancestors = []string{}
	}
	return ancestors, nil
}

// Routes lists the routes of a page
func (s *Service) Routes(ctx context.Context, p *security.Principal, pageGuid string) ([]bags.ListItemBag, error) {
	page, err := s.page(ctx, p, pageGuid)
	if err != nil {
		return nil, err
	}
	routes, err := s.store.Routes(ctx, page.Guid)
	if err != nil {
		return nil, err
	}
	items := make([]bags.ListItemBag, 0, len(routes))
	for _, route := range routes {
		items = append(items, bags.ListItemBag{Value: route.Guid, Text: route.Route})
	}
	return items, nil
}

// PageURL returns the URL of a page through routeGuid, its first route, or /page/<guid>
func (s *Service) PageURL(ctx context.Context, p *security.Principal, pageGuid, routeGuid string) (string, error) {
	page, err := s.page(ctx, p, pageGuid)
	if err != nil {
		return "", err
	}
	routes, err := s.store.Routes(ctx, page.Guid)
	if err != nil {
		return "", err
	}

	if routeGuid != "" {
		for _, route := range routes {
			if strings.EqualFold(route.Guid, routeGuid) {
				return "/" + strings.TrimPrefix(route.Route, "/"), nil
			}
		}
		return "", fmt.Errorf("route %s of page %s: %w", routeGuid, page.InternalName, handlers.ErrNotFound)
	}

	if len(routes) > 0 {
		return "/" + strings.TrimPrefix(routes[0].Route, "/"), nil
	}
	return "/page/" + page.Guid, nil
}

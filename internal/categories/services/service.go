package services

import (
	"context"
	"fmt"
	"strings"

	"go-controls/internal/categories/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"
	"go-controls/pkg/tree"
)

const searchLimit = 50

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	Children(ctx context.Context, scope models.Scope, parentGuid string) ([]models.Category, error)
	Search(ctx context.Context, entityTypeGuid, term string, limit int) ([]models.Category, error)
	Get(ctx context.Context, guid string) (*models.Category, error)
	Items(ctx context.Context, categoryGuid string, includeInactive bool) ([]models.CategorizedItem, error)
}

// Service handles business logic for the category picker
type Service struct {
	store Store
	authz security.Checker
}

// NewService creates a new service instance
func NewService(store Store, authz security.Checker) *Service {
	return &Service{store: store, authz: authz}
}

// ChildrenOptions mirrors the category-picker/children request
type ChildrenOptions struct {
	ParentGuid           string
	Scope                models.Scope
	IncludeCategoryGuids []string
	ExcludeCategoryGuids []string
	LoadAll              bool
	GetCategorizedItems  bool
	IncludeInactiveItems bool
	DefaultIconCssClass  string
}

func guidSet(guids []string) map[string]bool {
	set := make(map[string]bool, len(guids))
	for _, guid := range guids {
		set[strings.ToLower(guid)] = true
	}
	return set
}

func categoryNode(c models.Category, defaultIcon string) tree.Node {
	icon := c.IconCssClass
	if icon == "" {
		icon = defaultIcon
	}
	return tree.Node{
		Guid:         c.Guid,
		ParentGuid:   c.ParentGuid,
		Name:         c.Name,
		Order:        c.Order,
		IsActive:     true,
		IsFolder:     true,
		IconCssClass: icon,
	}
}

// Children returns the category tree below opts.ParentGuid. Categories the
// principal cannot view are dropped together with everything under them.
func (s *Service) Children(ctx context.Context, p *security.Principal, opts ChildrenOptions) ([]*bags.TreeItemBag, error) {
	if opts.Scope.EntityTypeGuid == "" {
		return nil, fmt.Errorf("entity type is required: %w", handlers.ErrInvalid)
	}

	if opts.ParentGuid != "" {
		if err := s.requireViewable(ctx, p, opts.Scope, opts.ParentGuid); err != nil {
			return nil, err
		}
	}

	defaultIcon := opts.DefaultIconCssClass
	if defaultIcon == "" {
		defaultIcon = models.DefaultIconCssClass
	}

	src := tree.SourceFunc(func(ctx context.Context, parentGuid string) ([]tree.Node, error) {
		categories, err := s.store.Children(ctx, opts.Scope, parentGuid)
		if err != nil {
			return nil, err
		}
		nodes := make([]tree.Node, len(categories))
		for i, c := range categories {
			nodes[i] = categoryNode(c, defaultIcon)
		}
		return nodes, nil
	})

	include := guidSet(opts.IncludeCategoryGuids)
	exclude := guidSet(opts.ExcludeCategoryGuids)

	filter := func(node tree.Node) bool {
		guid := strings.ToLower(node.Guid)
		if exclude[guid] {
			return false
		}
		if len(include) > 0 && opts.ParentGuid == "" && node.ParentGuid == "" && !include[guid] {
			return false
		}
		return s.authz.Can(ctx, p, security.Object("category", node.Guid), security.ActionView)
	}

	var itemErr error
	decorate := func(node tree.Node, item *bags.TreeItemBag) {
		if !opts.GetCategorizedItems || itemErr != nil {
			return
		}
		leaves, err := s.itemLeaves(ctx, node.Guid, opts.IncludeInactiveItems)
		if err != nil {
			itemErr = err
			return
		}
		if item.Children != nil {
			item.SetChildren(append(item.Children, leaves...))
		} else if len(leaves) > 0 {
			item.HasChildren = true
		}
	}

	items, err := tree.Build(ctx, src, opts.ParentGuid, tree.Options{
		LoadAll:  opts.LoadAll,
		Filter:   filter,
		Decorate: decorate,
	})
	if err != nil {
		return nil, err
	}
	if itemErr != nil {
		return nil, itemErr
	}

	// Items directly in the requested parent follow its subcategories
	if opts.GetCategorizedItems && opts.ParentGuid != "" {
		leaves, err := s.itemLeaves(ctx, opts.ParentGuid, opts.IncludeInactiveItems)
		if err != nil {
			return nil, err
		}
		items = append(items, leaves...)
	}
	return items, nil
}

// itemLeaves returns the categorized items of a category as sorted leaf nodes
func (s *Service) itemLeaves(ctx context.Context, categoryGuid string, includeInactive bool) ([]*bags.TreeItemBag, error) {
	items, err := s.store.Items(ctx, categoryGuid, includeInactive)
	if err != nil {
		return nil, err
	}

	nodes := make([]tree.Node, len(items))
	for i, item := range items {
		nodes[i] = tree.Node{Guid: item.Guid, Name: item.Name, Order: item.Order, IsActive: item.IsActive, IconCssClass: item.IconCssClass}
	}
	bags.SortByOrderThenText(nodes)

	leaves := make([]*bags.TreeItemBag, len(nodes))
	for i, node := range nodes {
		leaves[i] = &bags.TreeItemBag{
			Value:        node.Guid,
			Text:         node.Name,
			IconCssClass: node.IconCssClass,
			IsActive:     node.IsActive,
		}
	}
	return leaves, nil
}

// Search finds viewable categories of an entity type; the category field holds the parent path
func (s *Service) Search(ctx context.Context, p *security.Principal, entityTypeGuid, term string) ([]bags.ListItemBag, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("search term is required: %w", handlers.ErrInvalid)
	}

	categories, err := s.store.Search(ctx, entityTypeGuid, term, searchLimit)
	if err != nil {
		return nil, err
	}

	items := make([]bags.ListItemBag, 0, len(categories))
	for _, c := range categories {
		if !s.authz.Can(ctx, p, security.Object("category", c.Guid), security.ActionView) {
			continue
		}
		path, visible, err := s.path(ctx, p, c.ParentGuid)
		if err != nil {
			return nil, err
		}
		if !visible {
			continue
		}
		items = append(items, bags.ListItemBag{Value: c.Guid, Text: c.Name, Category: path})
	}
	bags.SortListItems(items)
	return items, nil
}

// requireViewable checks that a parent category exists in scope and that the
// principal may view it and every category above it
func (s *Service) requireViewable(ctx context.Context, p *security.Principal, scope models.Scope, guid string) error {
	parent, err := s.store.Get(ctx, guid)
	if err != nil {
		return err
	}
	if parent == nil || parent.EntityTypeGuid != scope.EntityTypeGuid {
		return fmt.Errorf("category %s not found: %w", guid, handlers.ErrNotFound)
	}
	if !s.authz.Can(ctx, p, security.Object("category", parent.Guid), security.ActionView) {
		return fmt.Errorf("not allowed to view category %s: %w", guid, handlers.ErrUnauthorized)
	}
	_, visible, err := s.path(ctx, p, parent.ParentGuid)
	if err != nil {
		return err
	}
	if !visible {
		return fmt.Errorf("not allowed to view category %s: %w", guid, handlers.ErrUnauthorized)
	}
	return nil
}

// path builds the "A > B" label of the ancestors starting at parentGuid.
// visible is false when the principal cannot view one of them.
func (s *Service) path(ctx context.Context, p *security.Principal, parentGuid string) (string, bool, error) {
	var names []string
	seen := map[string]bool{}
	for guid := parentGuid; guid != "" && !seen[guid]; {
		seen[guid] = true
		c, err := s.store.Get(ctx, guid)
		if err != nil {
			return "", false, err
		}
		if c == nil {
			break
		}
		if !s.authz.Can(ctx, p, security.Object("category", c.Guid), security.ActionView) {
			return "", false, nil
		}
		names = append([]string{c.Name}, names...)
		guid = c.ParentGuid
	}
	return strings.Join(names, " > "), true, nil
}

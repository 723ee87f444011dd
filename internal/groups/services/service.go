package services

import (
	"context"
	"fmt"
	"strings"

	"go-controls/internal/groups/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/cache"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"
	"go-controls/pkg/tree"
)

const groupTypesKey = "groups:types"

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	Children(ctx context.Context, parentGuid string, includeInactive bool) ([]models.Group, error)
	GetGroup(ctx context.Context, guid string) (*models.Group, error)
	GroupTypes(ctx context.Context) ([]models.GroupType, error)
	Members(ctx context.Context, groupGuid string) ([]models.GroupMember, error)
}

// Service handles business logic for the group pickers
type Service struct {
	store Store
	cache *cache.Cache
	authz security.Checker
}

// NewService creates a new service instance
func NewService(store Store, c *cache.Cache, authz security.Checker) *Service {
	return &Service{store: store, cache: c, authz: authz}
}

func (s *Service) groupTypes(ctx context.Context) (map[string]models.GroupType, []models.GroupType, error) {
	types, err := cache.GetOrLoad(ctx, s.cache, groupTypesKey, s.store.GroupTypes)
	if err != nil {
		return nil, nil, err
	}
	byGuid := make(map[string]models.GroupType, len(types))
	for _, t := range types {
		byGuid[strings.ToLower(t.Guid)] = t
	}
	return byGuid, types, nil
}

// ChildrenOptions mirrors the group-picker/children request
type ChildrenOptions struct {
	Guid                     string
	RootGroupGuid            string
	IncludedGroupTypeGuids   []string
	IncludeInactiveGroups    bool
	LimitToSchedulingEnabled bool
	LimitToRSVPEnabled       bool
}

// Children returns the viewable groups below opts.Guid (or opts.RootGroupGuid)
func (s *Service) Children(ctx context.Context, p *security.Principal, opts ChildrenOptions) ([]*bags.TreeItemBag, error) {
	typesByGuid, _, err := s.groupTypes(ctx)
	if err != nil {
		return nil, err
	}

	included := make(map[string]bool, len(opts.IncludedGroupTypeGuids))
	for _, guid := range opts.IncludedGroupTypeGuids {
		included[strings.ToLower(guid)] = true
	}

	groupTypeOf := map[string]string{}
	src := tree.SourceFunc(func(ctx context.Context, parentGuid string) ([]tree.Node, error) {
		groups, err := s.store.Children(ctx, parentGuid, opts.IncludeInactiveGroups)
		if err != nil {
			return nil, err
		}
		nodes := make([]tree.Node, len(groups))
		for i, g := range groups {
			groupType := strings.ToLower(g.GroupTypeGuid)
			groupTypeOf[g.Guid] = groupType
			nodes[i] = tree.Node{
				Guid:         g.Guid,
				ParentGuid:   g.ParentGuid,
				Name:         g.Name,
				Order:        g.Order,
				IsActive:     g.IsActive,
				IconCssClass: typesByGuid[groupType].IconCssClass,
			}
		}
		return nodes, nil
	})

	filter := func(node tree.Node) bool {
		groupType, ok := typesByGuid[groupTypeOf[node.Guid]]
		if len(included) > 0 && !included[groupTypeOf[node.Guid]] {
			return false
		}
		if opts.LimitToSchedulingEnabled && (!ok || !groupType.IsSchedulingEnabled) {
			return false
		}
		if opts.LimitToRSVPEnabled && (!ok || !groupType.IsRSVPEnabled) {
			return false
		}
		return s.authz.Can(ctx, p, security.Object("group", node.Guid), security.ActionView)
	}

	parent := opts.Guid
	if parent == "" {
		parent = opts.RootGroupGuid
	}
	return tree.Build(ctx, src, parent, tree.Options{
		IncludeInactive: opts.IncludeInactiveGroups,
		Filter:          filter,
	})
}

// Members lists the members of a group the principal may view
func (s *Service) Members(ctx context.Context, p *security.Principal, groupGuid string) ([]bags.ListItemBag, error) {
	group, err := s.store.GetGroup(ctx, groupGuid)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("group %s: %w", groupGuid, handlers.ErrNotFound)
	}
	if !s.authz.Can(ctx, p, security.Object("group", group.Guid), security.ActionView) {
		return nil, fmt.Errorf("viewing members of %s: %w", group.Name, handlers.ErrUnauthorized)
	}

	members, err := s.store.Members(ctx, group.Guid)
	if err != nil {
		return nil, err
	}

	items := make([]bags.ListItemBag, len(members))
	for i, member := range members {
		items[i] = bags.ListItemBag{
			Value:    member.Guid,
			Text:     member.PersonName,
			Disabled: member.Status == models.MemberStatusPending,
		}
	}
	bags.SortListItems(items)
	return items, nil
}

// Roles lists the roles of a group type in their configured order
func (s *Service) Roles(ctx context.Context, groupTypeGuid string, exclude []string) ([]bags.ListItemBag, error) {
	typesByGuid, _, err := s.groupTypes(ctx)
	if err != nil {
		return nil, err
	}
	groupType, ok := typesByGuid[strings.ToLower(groupTypeGuid)]
	if !ok {
		return nil, fmt.Errorf("group type %s: %w", groupTypeGuid, handlers.ErrNotFound)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, guid := range exclude {
		excluded[strings.ToLower(guid)] = true
	}

	roles := make([]models.GroupRole, 0, len(groupType.Roles))
	for _, role := range groupType.Roles {
		if !excluded[strings.ToLower(role.Guid)] {
			roles = append(roles, role)
		}
	}
	bags.SortByOrderThenText(roles)

	items := make([]bags.ListItemBag, len(roles))
	for i, role := range roles {
		items[i] = bags.ListItemBag{Value: role.Guid, Text: role.Name}
	}
	return items, nil
}

// GroupTypes lists group types, optionally restricted to guids
func (s *Service) GroupTypes(ctx context.Context, guids []string, sortByName bool) ([]bags.ListItemBag, error) {
	_, types, err := s.groupTypes(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(guids))
	for _, guid := range guids {
		wanted[strings.ToLower(guid)] = true
	}

	selected := make([]models.GroupType, 0, len(types))
	for _, t := range types {
		if len(wanted) == 0 || wanted[strings.ToLower(t.Guid)] {
			selected = append(selected, t)
		}
	}
	bags.SortByOrderThenText(selected)

	items := make([]bags.ListItemBag, len(selected))
	for i, t := range selected {
		items[i] = bags.ListItemBag{Value: t.Guid, Text: t.Name}
	}
	if sortByName {
		bags.SortListItems(items)
	}
	return items, nil
}

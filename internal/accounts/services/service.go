package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go-controls/internal/accounts/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"
	"go-controls/pkg/tree"

	"github.com/agnivade/levenshtein"
)

const searchLimit = 50

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	Children(ctx context.Context, parentGuid string, includeInactive bool) ([]models.FinancialAccount, error)
	HasChildren(ctx context.Context, guids []string, includeInactive bool) (map[string]bool, error)
	Search(ctx context.Context, term string, includeInactive bool) ([]models.FinancialAccount, error)
	Get(ctx context.Context, guid string) (*models.FinancialAccount, error)
}

// Service handles business logic for the account picker
type Service struct {
	store Store
	authz security.Checker
}

// NewService creates a new service instance
func NewService(store Store, authz security.Checker) *Service {
	return &Service{store: store, authz: authz}
}

// ChildrenOptions mirrors the account-picker/children request
type ChildrenOptions struct {
	ParentGuid        string
	IncludeInactive   bool
	DisplayPublicName bool
	LoadAll           bool
}

func (s *Service) authorize(ctx context.Context, p *security.Principal) error {
	if !s.authz.Can(ctx, p, security.Object("financialaccount", ""), security.ActionView) {
		return fmt.Errorf("viewing financial accounts: %w", handlers.ErrUnauthorized)
	}
	return nil
}

// accountSource exposes the account hierarchy to tree.Build
type accountSource struct {
	store             Store
	includeInactive   bool
	displayPublicName bool
}

func (a accountSource) Children(ctx context.Context, parentGuid string) ([]tree.Node, error) {
	accounts, err := a.store.Children(ctx, parentGuid, a.includeInactive)
	if err != nil {
		return nil, err
	}
	nodes := make([]tree.Node, len(accounts))
	for i, account := range accounts {
		nodes[i] = tree.Node{
			Guid:       account.Guid,
			ParentGuid: account.ParentGuid,
			Name:       account.Label(a.displayPublicName),
			Order:      account.Order,
			IsActive:   account.IsActive,
		}
	}
	return nodes, nil
}

func (a accountSource) HasChildren(ctx context.Context, guids []string) (map[string]bool, error) {
	return a.store.HasChildren(ctx, guids, a.includeInactive)
}

// Children returns the account tree below opts.ParentGuid
func (s *Service) Children(ctx context.Context, p *security.Principal, opts ChildrenOptions) ([]*bags.TreeItemBag, error) {
	if err := s.authorize(ctx, p); err != nil {
		return nil, err
	}

	src := accountSource{store: s.store, includeInactive: opts.IncludeInactive, displayPublicName: opts.DisplayPublicName}
	return tree.Build(ctx, src, opts.ParentGuid, tree.Options{
		LoadAll:         opts.LoadAll,
		IncludeInactive: opts.IncludeInactive,
	})
}

// Search finds accounts by name. Closer matches come first and each item's
// category is its ancestor path, e.g. "General Fund > Missions".
func (s *Service) Search(ctx context.Context, p *security.Principal, term string, includeInactive, displayPublicName bool) ([]bags.ListItemBag, error) {
	if err := s.authorize(ctx, p); err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("search term is required: %w", handlers.ErrInvalid)
	}

	accounts, err := s.store.Search(ctx, term, includeInactive)
	if err != nil {
		return nil, err
	}

	// rank every match before truncating so a close match is never cut off
	needle := strings.ToLower(term)
	distances := make(map[string]int, len(accounts))
	for _, account := range accounts {
		distances[account.Guid] = levenshtein.ComputeDistance(needle, strings.ToLower(account.Label(displayPublicName)))
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return distances[accounts[i].Guid] < distances[accounts[j].Guid]
	})
	if len(accounts) > searchLimit {
		accounts = accounts[:searchLimit]
	}

	items := make([]bags.ListItemBag, 0, len(accounts))
	paths := map[string]string{}
	for _, account := range accounts {
		path, err := s.path(ctx, account.ParentGuid, displayPublicName, paths)
		if err != nil {
			return nil, err
		}
		items = append(items, bags.ListItemBag{Value: account.Guid, Text: account.Label(displayPublicName), Category: path})
	}
	return items, nil
}

// path returns the " > " joined names from the root down to parentGuid
func (s *Service) path(ctx context.Context, parentGuid string, displayPublicName bool, memo map[string]string) (string, error) {
	if parentGuid == "" {
		return "", nil
	}
	if path, ok := memo[parentGuid]; ok {
		return path, nil
	}

	var names []string
	seen := map[string]bool{}
	for guid := parentGuid; guid != "" && !seen[guid]; {
		seen[guid] = true
		account, err := s.store.Get(ctx, guid)
		if err != nil {
			return "", err
		}
		if account == nil {
			break
		}
		names = append([]string{account.Label(displayPublicName)}, names...)
		guid = account.ParentGuid
	}

	path := strings.Join(names, " > ")
	memo[parentGuid] = path
	return path, nil
}

// ParentGuids returns the ancestors of the selected accounts, root-first
func (s *Service) ParentGuids(ctx context.Context, p *security.Principal, guids []string) ([]string, error) {
	if err := s.authorize(ctx, p); err != nil {
		return nil, err
	}

	ancestors, err := tree.Ancestors(ctx, func(ctx context.Context, guid string) (string, error) {
		account, err := s.store.Get(ctx, guid)
		if err != nil || account == nil {
			return "", err
		}
		return account.ParentGuid, nil
	}, guids)
	if err != nil {
		return nil, err
	}
	if ancestors == nil {
		ancestors = []string{}
	}
	return ancestors, nil
}

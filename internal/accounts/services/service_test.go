package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go-controls/internal/accounts/models"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security/securitytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps accounts in a slice and answers queries the way the repository does
type memStore struct {
	accounts []models.FinancialAccount
}

func (m *memStore) Children(ctx context.Context, parentGuid string, includeInactive bool) ([]models.FinancialAccount, error) {
	var out []models.FinancialAccount
	for _, a := range m.accounts {
		if a.ParentGuid == parentGuid && (a.IsActive || includeInactive) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) HasChildren(ctx context.Context, guids []string, includeInactive bool) (map[string]bool, error) {
	result := map[string]bool{}
	for _, guid := range guids {
		children, _ := m.Children(ctx, guid, includeInactive)
		if len(children) > 0 {
			result[guid] = true
		}
	}
	return result, nil
}

func (m *memStore) Search(ctx context.Context, term string, includeInactive bool) ([]models.FinancialAccount, error) {
	var out []models.FinancialAccount
	for _, a := range m.accounts {
		if (a.IsActive || includeInactive) && strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) Get(ctx context.Context, guid string) (*models.FinancialAccount, error) {
	for i := range m.accounts {
		if m.accounts[i].Guid == guid {
			return &m.accounts[i], nil
		}
	}
	return nil, nil
}

func chartOfAccounts() *memStore {
	return &memStore{accounts: []models.FinancialAccount{
		{Guid: "general", Name: "General Fund", PublicName: "Tithe", Order: 0, IsActive: true},
		{Guid: "missions", ParentGuid: "general", Name: "Missions", Order: 1, IsActive: true},
		{Guid: "mission-trips", ParentGuid: "missions", Name: "Mission Trips", Order: 0, IsActive: true},
		{Guid: "building", ParentGuid: "general", Name: "Building", Order: 0, IsActive: true},
		{Guid: "old", ParentGuid: "general", Name: "Old Mission", Order: 2, IsActive: false},
	}}
}

func TestService_Children(t *testing.T) {
	s := NewService(chartOfAccounts(), securitytest.AllowAll)
	ctx := context.Background()

	roots, err := s.Children(ctx, nil, ChildrenOptions{DisplayPublicName: true})
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "Tithe", roots[0].Text)
	assert.True(t, roots[0].HasChildren)
	assert.Nil(t, roots[0].Children)

	all, err := s.Children(ctx, nil, ChildrenOptions{LoadAll: true})
	require.NoError(t, err)
	require.Len(t, all[0].Children, 2)
	assert.Equal(t, "Building", all[0].Children[0].Text)
	assert.Equal(t, "Missions", all[0].Children[1].Text)
	assert.Equal(t, "Mission Trips", all[0].Children[1].Children[0].Text)

	withInactive, err := s.Children(ctx, nil, ChildrenOptions{ParentGuid: "general", IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, withInactive, 3)
}

func TestService_Search(t *testing.T) {
	s := NewService(chartOfAccounts(), securitytest.AllowAll)
	ctx := context.Background()

	items, err := s.Search(ctx, nil, "mission", false, false)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Missions", items[0].Text)
	assert.Equal(t, "General Fund", items[0].Category)
	assert.Equal(t, "Mission Trips", items[1].Text)
	assert.Equal(t, "General Fund > Missions", items[1].Category)

	_, err = s.Search(ctx, nil, "  ", false, false)
	assert.True(t, errors.Is(err, handlers.ErrInvalid))
}

func TestService_SearchRanksBeforeTruncating(t *testing.T) {
	store := &memStore{}
	for i := 0; i < 2*searchLimit; i++ {
		store.accounts = append(store.accounts, models.FinancialAccount{
			Guid: fmt.Sprintf("fund-%03d", i), Name: fmt.Sprintf("Mission Fund %03d", i), IsActive: true,
		})
	}
	// the exact match comes back from the store last
	store.accounts = append(store.accounts, models.FinancialAccount{Guid: "mission", Name: "Mission", IsActive: true})

	s := NewService(store, securitytest.AllowAll)
	items, err := s.Search(context.Background(), nil, "mission", false, false)
	require.NoError(t, err)
	require.Len(t, items, searchLimit)
	assert.Equal(t, "Mission", items[0].Text)
	assert.Equal(t, "Mission Fund 000", items[1].Text)
}

func TestService_ParentGuids(t *testing.T) {
	s := NewService(chartOfAccounts(), securitytest.AllowAll)

	guids, err := s.ParentGuids(context.Background(), nil, []string{"mission-trips", "building"})
	require.NoError(t, err)
	assert.Equal(t, []string{"general", "missions"}, guids)
}

func TestService_RequiresView(t *testing.T) {
	s := NewService(chartOfAccounts(), securitytest.DenyAll)
	_, err := s.Children(context.Background(), nil, ChildrenOptions{})
	assert.True(t, errors.Is(err, handlers.ErrUnauthorized))
}

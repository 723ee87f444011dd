package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go-controls/internal/definedvalues/models"
	"go-controls/pkg/cache"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"
	"go-controls/pkg/security/securitytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	types  map[string]*models.DefinedType
	values    []models.DefinedValue
	lists     int
	insertErr error
}

func (f *fakeStore) FindType(ctx context.Context, guid string) (*models.DefinedType, error) {
	return f.types[guid], nil
}

func (f *fakeStore) ListValues(ctx context.Context, definedTypeGuid string) ([]models.DefinedValue, error) {
	f.lists++
	var out []models.DefinedValue
	for _, v := range f.values {
		if v.DefinedTypeGuid == definedTypeGuid {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertValue(ctx context.Context, value *models.DefinedValue) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.values = append(f.values, *value)
	return nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		types: map[string]*models.DefinedType{"dt1": {Guid: "dt1", Name: "Marital Status"}},
		values: []models.DefinedValue{
			{Guid: "v-single", DefinedTypeGuid: "dt1", Value: "Single", Order: 1, IsActive: true},
			{Guid: "v-married", DefinedTypeGuid: "dt1", Value: "Married", Order: 0, IsActive: true},
			{Guid: "v-unknown", DefinedTypeGuid: "dt1", Value: "Unknown", Order: 2, IsActive: false},
		},
	}
}

func TestService_GetValues(t *testing.T) {
	store := newFakeStore()
	s := NewService(store, cache.New(nil, time.Minute), securitytest.AllowAll)
	ctx := context.Background()

	items, err := s.GetValues(ctx, nil, "dt1", false)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Married", items[0].Text)
	assert.Equal(t, "Single", items[1].Text)

	items, err = s.GetValues(ctx, nil, "dt1", true)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 1, store.lists, "second call should be served from cache")

	_, err = s.GetValues(ctx, nil, "missing", false)
	assert.True(t, errors.Is(err, handlers.ErrNotFound))
}

func TestService_GetValuesRequiresView(t *testing.T) {
	s := NewService(newFakeStore(), cache.New(nil, time.Minute), securitytest.DenyAll)
	_, err := s.GetValues(context.Background(), nil, "dt1", false)
	assert.True(t, errors.Is(err, handlers.ErrUnauthorized))
}

func TestService_SaveNewValue(t *testing.T) {
	tests := []struct {
		name    string
		checker security.Checker
		typ     string
		value   string
		wantErr error
	}{
		{"unknown type", securitytest.AllowAll, "nope", "Widowed", handlers.ErrNotFound},
		{"no edit access", securitytest.DenyAll, "dt1", "Widowed", handlers.ErrUnauthorized},
		{"blank value", securitytest.AllowAll, "dt1", "   ", handlers.ErrInvalid},
		{"duplicate ignoring case", securitytest.AllowAll, "dt1", "single", handlers.ErrConflict},
		{"ok", securitytest.AllowAll, "dt1", " Widowed ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			s := NewService(store, cache.New(nil, time.Minute), tt.checker)

			item, err := s.SaveNewValue(context.Background(), nil, tt.typ, tt.value, "")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.value), item.Text)
			saved := store.values[len(store.values)-1]
			assert.Equal(t, 3, saved.Order)
			assert.Equal(t, "widowed", saved.ValueKey)
		})
	}
}

func TestService_SaveNewValueLosesRaceToDuplicate(t *testing.T) {
	store := newFakeStore()
	// another save committed "Widowed" after this one listed the existing values
	store.insertErr = fmt.Errorf("value 'Widowed' already exists: %w", handlers.ErrConflict)
	s := NewService(store, cache.New(nil, time.Minute), securitytest.AllowAll)

	_, err := s.SaveNewValue(context.Background(), nil, "dt1", "Widowed", "")
	assert.True(t, errors.Is(err, handlers.ErrConflict))
	assert.Len(t, store.values, 3)
}

func TestService_SaveNewValueInvalidatesCache(t *testing.T) {
	store := newFakeStore()
	s := NewService(store, cache.New(nil, time.Minute), securitytest.AllowAll)
	ctx := context.Background()

	_, err := s.GetValues(ctx, nil, "dt1", false)
	require.NoError(t, err)

	_, err = s.SaveNewValue(ctx, nil, "dt1", "Divorced", "")
	require.NoError(t, err)

	items, err := s.GetValues(ctx, nil, "dt1", false)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

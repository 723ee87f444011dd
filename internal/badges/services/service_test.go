package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go-controls/internal/badges/models"
	etmodels "go-controls/internal/entitytypes/models"
	"go-controls/pkg/cache"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security/securitytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	badges []models.Badge
	lists  int
}

func (f *fakeStore) List(ctx context.Context) ([]models.Badge, error) {
	f.lists++
	return append([]models.Badge(nil), f.badges...), nil
}

type fakeEntities map[string]map[string]interface{}

func (f fakeEntities) LoadEntity(ctx context.Context, entityTypeGuid, entityGuid string) (*etmodels.EntityType, map[string]interface{}, error) {
	doc, ok := f[entityGuid]
	if !ok {
		return nil, nil, fmt.Errorf("entity %s: %w", entityGuid, handlers.ErrNotFound)
	}
	return &etmodels.EntityType{Guid: entityTypeGuid, Name: "Person"}, doc, nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{badges: []models.Badge{
		{Guid: "b-baptism", Name: "Baptized", EntityTypeGuid: "person", Order: 2, IsActive: true,
			Template: `{{ if .baptized }}<i class="fa fa-tint"></i> {{ .nick_name }}{{ end }}`},
		{Guid: "b-broken", Name: "Broken", EntityTypeGuid: "person", Order: 1, IsActive: true,
			Template: `{{ .first_name `},
		{Guid: "b-script", Name: "Alert", Order: 3, IsActive: true, CssClass: "badge-alert",
			Template: `<span onclick="steal()">{{ .first_name }}</span><script>alert(1)</script>`},
		{Guid: "b-group", Name: "Group Size", EntityTypeGuid: "group", Order: 0, IsActive: true, Template: `{{ .member_count }}`},
		{Guid: "b-old", Name: "Retired", Order: 0, IsActive: false, Template: `old`},
	}}
}

func TestService_PickerItems(t *testing.T) {
	store := newFakeStore()
	s := NewService(store, cache.New(nil, time.Minute), fakeEntities{}, securitytest.AllowAll)

	items, err := s.PickerItems(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, item := range items {
		names = append(names, item.Text)
	}
	assert.Equal(t, []string{"Group Size", "Broken", "Baptized", "Alert"}, names)

	_, err = s.PickerItems(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, store.lists)
}

func TestService_Render(t *testing.T) {
	entities := fakeEntities{"ted": {"first_name": "Ted", "nick_name": "Teddy", "baptized": true}}
	s := NewService(newFakeStore(), cache.New(nil, time.Minute), entities, securitytest.AllowAll)
	ctx := context.Background()

	rendered, err := s.Render(ctx, nil, "person", "ted", nil)
	require.NoError(t, err)
	require.Len(t, rendered, 2, "broken and other entity type badges are skipped")

	assert.Equal(t, "b-baptism", rendered[0].BadgeGuid)
	assert.Equal(t, `<i class="fa fa-tint"></i> Teddy`, rendered[0].Html)

	assert.Equal(t, "b-script", rendered[1].BadgeGuid)
	assert.Equal(t, "badge-alert", rendered[1].CssClass)
	assert.Equal(t, "<span>Ted</span>", rendered[1].Html)
	assert.False(t, strings.Contains(rendered[1].Html, "script"))
}

func TestService_RenderFilters(t *testing.T) {
	entities := fakeEntities{"ted": {"first_name": "Ted"}}
	ctx := context.Background()

	s := NewService(newFakeStore(), cache.New(nil, time.Minute), entities, securitytest.AllowAll)
	rendered, err := s.Render(ctx, nil, "person", "ted", []string{"B-SCRIPT"})
	require.NoError(t, err)
	require.Len(t, rendered, 1)
	assert.Equal(t, "b-script", rendered[0].BadgeGuid)

	_, err = s.Render(ctx, nil, "person", "nobody", nil)
	assert.True(t, errors.Is(err, handlers.ErrNotFound))

	noBadges := securitytest.CheckerFunc(func(obj, action string) bool { return !strings.HasPrefix(obj, "badge:") })
	hidden := NewService(newFakeStore(), cache.New(nil, time.Minute), entities, noBadges)
	rendered, err = hidden.Render(ctx, nil, "person", "ted", nil)
	require.NoError(t, err)
	assert.Empty(t, rendered)
}

func TestService_RenderRequiresViewOnEntity(t *testing.T) {
	entities := fakeEntities{
		"ted":   {"first_name": "Ted", "nick_name": "Teddy", "baptized": true},
		"cindy": {"first_name": "Cindy", "nick_name": "Cin", "baptized": true},
	}
	// badges are public but only ted's record is visible
	onlyTed := securitytest.CheckerFunc(func(obj, action string) bool {
		return strings.HasPrefix(obj, "badge:") || obj == "person:ted"
	})
	s := NewService(newFakeStore(), cache.New(nil, time.Minute), entities, onlyTed)
	ctx := context.Background()

	tests := []struct {
		name       string
		entityGuid string
		wantErr    error
	}{
		{"visible entity", "ted", nil},
		{"hidden entity", "cindy", handlers.ErrUnauthorized},
		{"missing entity", "nobody", handlers.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := s.Render(ctx, nil, "person", tt.entityGuid, nil)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, rendered)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, rendered)
		})
	}
}

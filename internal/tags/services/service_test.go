package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	etmodels "go-controls/internal/entitytypes/models"
	"go-controls/internal/tags/models"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"
	"go-controls/pkg/security/securitytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	tags  []models.Tag
	items []models.TaggedItem
}

func visibleTo(tag models.Tag, personGuid string) bool {
	return tag.OwnerPersonGuid == "" || tag.OwnerPersonGuid == personGuid
}

func (m *memStore) EntityTags(ctx context.Context, entityTypeGuid, entityGuid, personGuid string) ([]models.Tag, error) {
	var out []models.Tag
	for _, item := range m.items {
		if item.EntityGuid != entityGuid {
			continue
		}
		for _, tag := range m.tags {
			if tag.Guid == item.TagGuid && visibleTo(tag, personGuid) {
				out = append(out, tag)
			}
		}
	}
	return out, nil
}

func (m *memStore) Search(ctx context.Context, entityTypeGuid, prefix, categoryGuid, personGuid string, limit int) ([]models.Tag, error) {
	var out []models.Tag
	for _, tag := range m.tags {
		if tag.EntityTypeGuid == entityTypeGuid && tag.IsActive && visibleTo(tag, personGuid) &&
			strings.HasPrefix(tag.NameKey, strings.ToLower(prefix)) {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (m *memStore) FindByName(ctx context.Context, entityTypeGuid, name, personGuid string) (*models.Tag, error) {
	for i, tag := range m.tags {
		if tag.EntityTypeGuid == entityTypeGuid && tag.NameKey == strings.ToLower(name) && visibleTo(tag, personGuid) {
			return &m.tags[i], nil
		}
	}
	return nil, nil
}

func (m *memStore) GetTag(ctx context.Context, guid string) (*models.Tag, error) {
	for i := range m.tags {
		if m.tags[i].Guid == guid {
			return &m.tags[i], nil
		}
	}
	return nil, nil
}

func (m *memStore) InsertTag(ctx context.Context, tag *models.Tag) error {
	m.tags = append(m.tags, *tag)
	return nil
}

func (m *memStore) AddTaggedItem(ctx context.Context, item *models.TaggedItem) error {
	for _, existing := range m.items {
		if existing.TagGuid == item.TagGuid && existing.EntityGuid == item.EntityGuid {
			return nil
		}
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *memStore) RemoveTaggedItem(ctx context.Context, tagGuid, entityGuid string) error {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.TagGuid != tagGuid || item.EntityGuid != entityGuid {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}

type people map[string]bool

func (p people) LoadEntity(ctx context.Context, entityTypeGuid, entityGuid string) (*etmodels.EntityType, map[string]interface{}, error) {
	if entityTypeGuid != "person" || !p[entityGuid] {
		return nil, nil, fmt.Errorf("person %s: %w", entityGuid, handlers.ErrNotFound)
	}
	return &etmodels.EntityType{Guid: "person", Name: "Person"}, map[string]interface{}{"guid": entityGuid}, nil
}

var (
	ted   = &security.Principal{User: &security.User{UserID: "u1", PersonGuid: "ted"}}
	cindy = &security.Principal{User: &security.User{UserID: "u2", PersonGuid: "cindy"}}
)

func tagStore() *memStore {
	return &memStore{
		tags: []models.Tag{
			{Guid: "vip", Name: "VIP", NameKey: "vip", EntityTypeGuid: "person", IsActive: true},
			{Guid: "volunteer", Name: "Volunteer", NameKey: "volunteer", EntityTypeGuid: "person", IsActive: true},
			{Guid: "ted-follow", Name: "Follow up", NameKey: "follow up", EntityTypeGuid: "person", OwnerPersonGuid: "ted", IsActive: true},
		},
		items: []models.TaggedItem{
			{TagGuid: "vip", EntityGuid: "p1"},
			{TagGuid: "ted-follow", EntityGuid: "p1"},
		},
	}
}

func TestService_EntityTags(t *testing.T) {
	s := NewService(tagStore(), people{"p1": true}, securitytest.AllowAll)
	ctx := context.Background()

	tags, err := s.EntityTags(ctx, ted, "person", "p1")
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	tags, err = s.EntityTags(ctx, cindy, "person", "p1")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "VIP", tags[0].Name)
}

func TestService_AvailableTags(t *testing.T) {
	s := NewService(tagStore(), people{}, securitytest.AllowAll)

	tags, err := s.AvailableTags(context.Background(), ted, "person", "V", "")
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	tags, err = s.AvailableTags(context.Background(), ted, "person", "fo", "")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.True(t, tags[0].IsPersonal())
}

func TestService_CreatePersonalTag(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		p       *security.Principal
		tagName string
		wantErr error
	}{
		{"anonymous", nil, "Prayer", handlers.ErrUnauthorized},
		{"blank", ted, "  ", handlers.ErrInvalid},
		{"clashes with organization tag", ted, "vip", handlers.ErrConflict},
		{"clashes with own tag", ted, "Follow Up", handlers.ErrConflict},
		{"same name as someone else's tag", cindy, "Follow Up", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tagStore()
			s := NewService(store, people{}, securitytest.AllowAll)

			tag, err := s.CreatePersonalTag(ctx, tt.p, "person", tt.tagName, "")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.p.PersonGuid(), tag.OwnerPersonGuid)
			assert.Len(t, store.tags, 4)
		})
	}
}

func TestService_SaveAndRemoveTag(t *testing.T) {
	store := tagStore()
	s := NewService(store, people{"p1": true, "p2": true}, securitytest.AllowAll)
	ctx := context.Background()

	tag, err := s.SaveTag(ctx, ted, "person", "p2", "volunteer")
	require.NoError(t, err)
	assert.Equal(t, "Volunteer", tag.Name)

	_, err = s.SaveTag(ctx, ted, "person", "p2", "volunteer")
	require.NoError(t, err)
	assert.Len(t, store.items, 3)

	_, err = s.SaveTag(ctx, ted, "person", "p9", "volunteer")
	assert.True(t, errors.Is(err, handlers.ErrNotFound))

	_, err = s.SaveTag(ctx, ted, "person", "p2", "missing")
	assert.True(t, errors.Is(err, handlers.ErrNotFound))

	_, err = s.SaveTag(ctx, cindy, "person", "p2", "ted-follow")
	assert.True(t, errors.Is(err, handlers.ErrNotFound), "someone else's personal tag is invisible")

	require.NoError(t, s.RemoveTag(ctx, ted, "person", "p2", "volunteer"))
	assert.Len(t, store.items, 2)
}

func TestService_SaveTagNeedsEditOnOrganizationTags(t *testing.T) {
	viewOnly := securitytest.CheckerFunc(func(obj, action string) bool { return action == security.ActionView })
	s := NewService(tagStore(), people{"p1": true}, viewOnly)

	_, err := s.SaveTag(context.Background(), ted, "person", "p1", "volunteer")
	assert.True(t, errors.Is(err, handlers.ErrUnauthorized))

	_, err = s.SaveTag(context.Background(), ted, "person", "p1", "ted-follow")
	assert.NoError(t, err)
}

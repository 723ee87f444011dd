package services

import (
	"context"
	"errors"
	"testing"

	"go-controls/internal/pages/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security/securitytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	pages  []models.Page
	routes []models.PageRoute
}

func (f *fakeStore) Children(ctx context.Context, parentGuid string) ([]models.Page, error) {
	var out []models.Page
	for _, page := range f.pages {
		if page.ParentPageGuid == parentGuid {
			out = append(out, page)
		}
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, guid string) (*models.Page, error) {
	for i := range f.pages {
		if f.pages[i].Guid == guid {
			return &f.pages[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Routes(ctx context.Context, pageGuid string) ([]models.PageRoute, error) {
	var out []models.PageRoute
	for _, route := range f.routes {
		if route.PageGuid == pageGuid {
			out = append(out, route)
		}
	}
	return out, nil
}

// site:
//
//	internal
//	  people
//	    person-profile
//	  admin
//	external
//	  give
func newFakeStore() *fakeStore {
	return &fakeStore{
		pages: []models.Page{
			{Guid: "internal", InternalName: "Internal Homepage", Order: 0},
			{Guid: "external", InternalName: "External Homepage", Order: 1},
			{Guid: "people", ParentPageGuid: "internal", InternalName: "People", Order: 0},
			{Guid: "admin", ParentPageGuid: "internal", InternalName: "Admin Tools", Order: 1},
			{Guid: "person-profile", ParentPageGuid: "people", InternalName: "Person Profile"},
			{Guid: "give", ParentPageGuid: "external", InternalName: "Give"},
		},
		routes: []models.PageRoute{
			{Guid: "r-give", PageGuid: "give", Route: "give"},
			{Guid: "r-give-campus", PageGuid: "give", Route: "give/{campus}"},
		},
	}
}

func texts(items []*bags.TreeItemBag) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Text
	}
	return out
}

func TestService_Children(t *testing.T) {
	ctx := context.Background()
	s := NewService(newFakeStore(), securitytest.AllowAll)

	items, err := s.Children(ctx, nil, "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Internal Homepage", "External Homepage"}, texts(items))
	assert.True(t, items[0].HasChildren)

	items, err = s.Children(ctx, nil, "", "internal", []string{"ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, []string{"People"}, texts(items))

	items, err = s.Children(ctx, nil, "people", "internal", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Person Profile"}, texts(items))

	noAdmin := securitytest.CheckerFunc(func(obj, action string) bool { return obj != "page:admin" })
	items, err = NewService(newFakeStore(), noAdmin).Children(ctx, nil, "internal", "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"People"}, texts(items))
}

func TestService_ChildrenBelowHiddenPage(t *testing.T) {
	ctx := context.Background()
	hidePeople := securitytest.CheckerFunc(func(obj, action string) bool { return obj != "page:people" })
	s := NewService(newFakeStore(), hidePeople)

	tests := []struct {
		name       string
		guid, root string
		wantErr    error
	}{
		{"hidden page", "people", "", handlers.ErrUnauthorized},
		{"below hidden page", "person-profile", "", handlers.ErrUnauthorized},
		{"hidden root", "", "people", handlers.ErrUnauthorized},
		{"unknown page", "missing", "", handlers.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := s.Children(ctx, nil, tt.guid, tt.root, nil)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, items)
		})
	}

	items, err := s.Children(ctx, nil, "external", "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Give"}, texts(items))
}

func TestService_SelectedAncestors(t *testing.T) {
	s := NewService(newFakeStore(), securitytest.AllowAll)

	guids, err := s.SelectedAncestors(context.Background(), []string{"person-profile", "give", "admin"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"internal", "people", "external"}, guids)

	guids, err = s.SelectedAncestors(context.Background(), []string{"person-profile"}, "internal")
	require.NoError(t, err)
	assert.Equal(t, []string{"people"}, guids)

	guids, err = s.SelectedAncestors(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Empty(t, guids)
}

func TestService_PageURL(t *testing.T) {
	s := NewService(newFakeStore(), securitytest.AllowAll)
	ctx := context.Background()

	tests := []struct {
		name     string
		page     string
		route    string
		want     string
		notFound bool
	}{
		{name: "first route", page: "give", want: "/give"},
		{name: "chosen route", page: "give", route: "r-give-campus", want: "/give/{campus}"},
		{name: "no routes", page: "people", want: "/page/people"},
		{name: "route of another page", page: "people", route: "r-give", notFound: true},
		{name: "unknown page", page: "missing", notFound: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := s.PageURL(ctx, nil, tt.page, tt.route)
			if tt.notFound {
				assert.True(t, errors.Is(err, handlers.ErrNotFound), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, url)
		})
	}

	routes, err := s.Routes(ctx, nil, "give")
	require.NoError(t, err)
	assert.Len(t, routes, 2)
}

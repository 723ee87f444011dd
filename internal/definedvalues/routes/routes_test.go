package routes

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-controls/internal/definedvalues/models"
	"go-controls/internal/definedvalues/services"
	"go-controls/pkg/cache"
	"go-controls/pkg/security"
	"go-controls/pkg/security/securitytest"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	values []models.DefinedValue
}

func (m *memStore) FindType(ctx context.Context, guid string) (*models.DefinedType, error) {
	if guid != "dt1" {
		return nil, nil
	}
	return &models.DefinedType{Guid: "dt1", Name: "Campus Type"}, nil
}

func (m *memStore) ListValues(ctx context.Context, definedTypeGuid string) ([]models.DefinedValue, error) {
	return m.values, nil
}

func (m *memStore) InsertValue(ctx context.Context, value *models.DefinedValue) error {
	m.values = append(m.values, *value)
	return nil
}

func TestDefinedValueRoutes(t *testing.T) {
	_, api := humatest.New(t)
	guard, _ := securitytest.NewGuard(t, securitytest.Users{
		"staff":  {UserID: "u1", Roles: []string{"Staff"}},
		"member": {UserID: "u2"},
	})
	service := services.NewService(&memStore{}, cache.New(nil, time.Minute), guard)
	NewModule(service, guard).RegisterUnifiedRoutes(api)

	resp := api.Post("/controls/defined-value-picker/defined-values", map[string]any{"definedTypeGuid": "dt1"})
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = api.Post("/controls/defined-value-picker/defined-values", map[string]any{"definedTypeGuid": "dt9"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = api.Post("/controls/defined-value-picker/save-new-value", "Authorization: Bearer member",
		map[string]any{"definedTypeGuid": "dt1", "value": "Online"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = api.Post("/controls/defined-value-picker/save-new-value", "Authorization: Bearer staff",
		map[string]any{"definedTypeGuid": "dt1", "value": "Online"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.Post("/controls/defined-value-picker/save-new-value", "Authorization: Bearer staff",
		map[string]any{"definedTypeGuid": "dt1", "value": "ONLINE"})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = api.Post("/controls/defined-value-picker/save-new-value", "Authorization: Bearer staff",
		map[string]any{"definedTypeGuid": "dt1", "value": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDefinedValueRoutes_GrantAllowsEdit(t *testing.T) {
	_, api := humatest.New(t)
	guard, _ := securitytest.NewGuard(t, nil)
	service := services.NewService(&memStore{}, cache.New(nil, time.Minute), guard)
	NewModule(service, guard).RegisterUnifiedRoutes(api)

	token, _, err := guard.Grants().Issue([]security.GrantRule{{Object: "definedtype:dt1", Action: security.ActionEdit}}, time.Minute)
	require.NoError(t, err)

	resp := api.Post("/controls/defined-value-picker/save-new-value",
		map[string]any{"definedTypeGuid": "dt1", "value": "Satellite", "securityGrantToken": token})
	assert.Equal(t, http.StatusOK, resp.Code)
}

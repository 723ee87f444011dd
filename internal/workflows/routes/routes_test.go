package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"go-controls/internal/workflows/models"
	"go-controls/internal/workflows/services"
	"go-controls/pkg/bags"
	"go-controls/pkg/security/securitytest"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type oneCategory struct{}

func (oneCategory) WorkflowTypes(ctx context.Context, categoryGuid string, includeInactive bool) ([]models.WorkflowType, error) {
	return []models.WorkflowType{
		{Guid: "wt-visit", Name: "Hospital Visit", CategoryGuid: "care", IsActive: true},
	}, nil
}

func (oneCategory) CategoryNames(ctx context.Context, guids []string) (map[string]string, error) {
	return map[string]string{"care": "Care"}, nil
}

func TestWorkflowTypeRoutes(t *testing.T) {
	_, api := humatest.New(t)
	guard, _ := securitytest.NewGuard(t, securitytest.Users{
		"member": {UserID: "u1"},
	})
	NewModule(services.NewService(oneCategory{}, guard), guard).RegisterUnifiedRoutes(api)

	resp := api.Post("/controls/workflow-type-picker/workflow-types", "Authorization: Bearer member", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)

	var items []bags.ListItemBag
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "wt-visit", items[0].Value)
	assert.Equal(t, "Care", items[0].Category)

	// anonymous callers have no view policy on workflow types
	resp = api.Post("/controls/workflow-type-picker/workflow-types", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &items))
	assert.Empty(t, items)
}

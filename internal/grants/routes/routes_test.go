package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"go-controls/internal/grants/services"
	"go-controls/pkg/security/securitytest"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantRoutes(t *testing.T) {
	_, api := humatest.New(t)
	guard, _ := securitytest.NewGuard(t, securitytest.Users{
		"admin": {UserID: "u1", Roles: []string{"Administrators"}},
		"staff": {UserID: "u2", Roles: []string{"Staff"}},
	})
	NewModule(services.NewService(guard.Grants(), guard), guard).RegisterUnifiedRoutes(api)

	rules := []map[string]string{{"obj": "asset:*", "act": "edit"}}

	resp := api.Post("/controls/security-grant/issue", "Authorization: Bearer staff",
		map[string]any{"rules": rules, "ttlMinutes": 10})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = api.Post("/controls/security-grant/issue", "Authorization: Bearer admin",
		map[string]any{"rules": rules, "ttlMinutes": 2000})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = api.Post("/controls/security-grant/issue", "Authorization: Bearer admin",
		map[string]any{"rules": rules, "ttlMinutes": 10})
	require.Equal(t, http.StatusOK, resp.Code)

	var issued struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &issued))
	require.NotEmpty(t, issued.Token)

	grant, err := guard.Grants().Decode(issued.Token)
	require.NoError(t, err)
	assert.True(t, grant.IsAccessGranted("asset:photos", "edit"))

	resp = api.Post("/controls/security-grant/renew", map[string]any{"token": issued.Token})
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = api.Post("/controls/security-grant/renew", map[string]any{"token": "not-a-grant"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

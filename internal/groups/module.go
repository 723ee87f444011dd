package groups

import (
	"log/slog"

	"go-controls/internal/groups/routes"
	"go-controls/internal/groups/services"
	"go-controls/pkg/cache"
	"go-controls/pkg/database"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the group picker module
type Module struct {
	*module.BaseModule
	routes *routes.Module
}

// NewModule creates a new groups module
func NewModule(db *database.MongoDB, c *cache.Cache, guard *security.Guard) *Module {
	service := services.NewService(services.NewRepository(db.Database), c, guard)
	return &Module{
		BaseModule: module.NewBaseModule("groups"),
		routes:     routes.NewModule(service, guard),
	}
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering group picker routes")
	m.routes.RegisterUnifiedRoutes(api)
}

var _ module.Module = (*Module)(nil)

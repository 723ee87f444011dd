package definedvalues

import (
	"log/slog"

	"go-controls/internal/definedvalues/routes"
	"go-controls/internal/definedvalues/services"
	"go-controls/pkg/cache"
	"go-controls/pkg/database"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the defined value picker module
type Module struct {
	*module.BaseModule
	routes *routes.Module
}

// NewModule creates a new defined values module
func NewModule(db *database.MongoDB, c *cache.Cache, guard *security.Guard) *Module {
	service := services.NewService(services.NewRepository(db.Database), c, guard)
	return &Module{
		BaseModule: module.NewBaseModule("definedvalues"),
		routes:     routes.NewModule(service, guard),
	}
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering defined value picker routes")
	m.routes.RegisterUnifiedRoutes(api)
}

var _ module.Module = (*Module)(nil)

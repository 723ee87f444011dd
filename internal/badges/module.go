package badges

import (
	"log/slog"

	"go-controls/internal/badges/routes"
	"go-controls/internal/badges/services"
	"go-controls/pkg/cache"
	"go-controls/pkg/database"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the badges module
type Module struct {
	*module.BaseModule
	routes *routes.Module
}

// NewModule creates a new badges module
func NewModule(db *database.MongoDB, c *cache.Cache, entities services.EntityLoader, guard *security.Guard) *Module {
	service := services.NewService(services.NewRepository(db.Database), c, entities, guard)
	return &Module{
		BaseModule: module.NewBaseModule("badges"),
		routes:     routes.NewModule(service, guard),
	}
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering badge routes")
	m.routes.RegisterUnifiedRoutes(api)
}

var _ module.Module = (*Module)(nil)

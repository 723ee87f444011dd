package locations

import (
	"log/slog"

	"go-controls/internal/locations/routes"
	"go-controls/internal/locations/services"
	"go-controls/pkg/database"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the location picker module
type Module struct {
	*module.BaseModule
	routes *routes.Module
}

// NewModule creates a new location picker module
func NewModule(db *database.MongoDB, guard *security.Guard) *Module {
	service := services.NewService(services.NewRepository(db.Database), guard)
	return &Module{
		BaseModule: module.NewBaseModule("locations"),
		routes:     routes.NewModule(service, guard),
	}
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering location picker routes")
	m.routes.RegisterUnifiedRoutes(api)
}

var _ module.Module = (*Module)(nil)

package entitytypes

import (
	"log/slog"

	"go-controls/internal/entitytypes/routes"
	"go-controls/internal/entitytypes/services"
	"go-controls/pkg/cache"
	"go-controls/pkg/database"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the entity type picker module
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
}

// NewModule creates a new entity types module
func NewModule(db *database.MongoDB, c *cache.Cache, guard *security.Guard) *Module {
	service := services.NewService(services.NewRepository(db.Database), c)
	return &Module{
		BaseModule: module.NewBaseModule("entitytypes"),
		service:    service,
		routes:     routes.NewModule(service, guard),
	}
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering entity type picker routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// GetService returns the entity type service for use by other modules
func (m *Module) GetService() *services.Service {
	return m.service
}

var _ module.Module = (*Module)(nil)

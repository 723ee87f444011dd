package tags

import (
	"log/slog"

	"go-controls/internal/tags/routes"
	"go-controls/internal/tags/services"
	"go-controls/pkg/database"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the entity tag list module
type Module struct {
	*module.BaseModule
	routes *routes.Module
}

// NewModule creates a new tags module. entities is usually the entity types service.
func NewModule(db *database.MongoDB, entities services.EntityLoader, guard *security.Guard) *Module {
	service := services.NewService(services.NewRepository(db.Database), entities, guard)
	return &Module{
		BaseModule: module.NewBaseModule("tags"),
		routes:     routes.NewModule(service, guard),
	}
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering entity tag list routes")
	m.routes.RegisterUnifiedRoutes(api)
}

var _ module.Module = (*Module)(nil)

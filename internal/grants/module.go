package grants

import (
	"log/slog"

	"go-controls/internal/grants/routes"
	"go-controls/internal/grants/services"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the security grant module
type Module struct {
	*module.BaseModule
	routes *routes.Module
}

// NewModule creates a new grants module
func NewModule(guard *security.Guard) *Module {
	service := services.NewService(guard.Grants(), guard)
	return &Module{
		BaseModule: module.NewBaseModule("grants"),
		routes:     routes.NewModule(service, guard),
	}
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering security grant routes")
	m.routes.RegisterUnifiedRoutes(api)
}

var _ module.Module = (*Module)(nil)

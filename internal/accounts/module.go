package accounts

import (
	"log/slog"

	"go-controls/internal/accounts/routes"
	"go-controls/internal/accounts/services"
	"go-controls/pkg/database"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the account picker module
type Module struct {
	*module.BaseModule
	routes *routes.Module
}

// NewModule creates a new account picker module
func NewModule(db *database.MongoDB, guard *security.Guard) *Module {
	service := services.NewService(services.NewRepository(db.Database), guard)
	return &Module{
		BaseModule: module.NewBaseModule("accounts"),
		routes:     routes.NewModule(service, guard),
	}
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering account picker routes")
	m.routes.RegisterUnifiedRoutes(api)
}

var _ module.Module = (*Module)(nil)

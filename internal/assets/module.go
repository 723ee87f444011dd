package assets

import (
	"log/slog"

	"go-controls/internal/assets/routes"
	"go-controls/internal/assets/services"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the asset manager module
type Module struct {
	*module.BaseModule
	routes *routes.Module
}

// NewModule creates a new asset manager module serving files below root
func NewModule(root string, guard *security.Guard) (*Module, error) {
	storage, err := services.NewStorage(root)
	if err != nil {
		return nil, err
	}
	service, err := services.NewService(storage, guard)
	if err != nil {
		return nil, err
	}
	return &Module{
		BaseModule: module.NewBaseModule("assets"),
		routes:     routes.NewModule(service, guard),
	}, nil
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering asset manager routes")
	m.routes.RegisterUnifiedRoutes(api)
}

var _ module.Module = (*Module)(nil)

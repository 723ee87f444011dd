package mergefields

import (
	"log/slog"

	"go-controls/internal/mergefields/routes"
	"go-controls/internal/mergefields/services"
	"go-controls/pkg/module"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the merge field picker module
type Module struct {
	*module.BaseModule
	routes *routes.Module
}

// NewModule creates a new merge fields module over the default registry
func NewModule() (*Module, error) {
	service, err := services.NewService(services.DefaultRegistry())
	if err != nil {
		return nil, err
	}
	return &Module{
		BaseModule: module.NewBaseModule("mergefields"),
		routes:     routes.NewModule(service),
	}, nil
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering merge field picker routes")
	m.routes.RegisterUnifiedRoutes(api)
}

var _ module.Module = (*Module)(nil)

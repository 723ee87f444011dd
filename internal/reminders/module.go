package reminders

import (
	"context"
	"log/slog"

	"go-controls/internal/reminders/routes"
	"go-controls/internal/reminders/services"
	"go-controls/pkg/config"
	"go-controls/pkg/database"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the reminder button module
type Module struct {
	*module.BaseModule
	routes  *routes.Module
	renewer *services.Renewer
}

// NewModule creates a new reminders module
func NewModule(db *database.MongoDB, entities services.EntityLoader, guard *security.Guard) *Module {
	service := services.NewService(services.NewRepository(db.Database), entities)
	return &Module{
		BaseModule: module.NewBaseModule("reminders"),
		routes:     routes.NewModule(service, guard),
		renewer:    services.NewRenewer(service, config.GetReminderRenewalSchedule()),
	}
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering reminder button routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// StartBackgroundTasks schedules the renewal of completed recurring reminders
func (m *Module) StartBackgroundTasks(ctx context.Context) {
	slog.Info("Starting reminder background tasks", "module", m.Name())
	if err := m.renewer.Start(ctx); err != nil {
		slog.Error("Failed to start reminder renewal", "error", err)
	}
}

// Stop stops the renewal schedule
func (m *Module) Stop() {
	m.renewer.Stop()
	m.BaseModule.Stop()
}

var _ module.Module = (*Module)(nil)

package module

import (
	"context"
	"log/slog"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module defines the interface that all control modules must implement
type Module interface {
	// Routes sets up plain chi routes outside the unified API, if any
	Routes(r chi.Router)

	// RegisterUnifiedRoutes registers the module's operations on the shared Huma API
	RegisterUnifiedRoutes(api huma.API)

	// StartBackgroundTasks starts any background processing for this module
	StartBackgroundTasks(ctx context.Context)

	// Stop gracefully stops the module and its background tasks
	Stop()

	// Name returns the module name for logging and identification
	Name() string
}

// BaseModule provides the no-op parts of Module for modules without background work
type BaseModule struct {
	name     string
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewBaseModule creates a new base module
func NewBaseModule(name string) *BaseModule {
	return &BaseModule{
		name:   name,
		stopCh: make(chan struct{}),
	}
}

// Name returns the module name
func (b *BaseModule) Name() string {
	return b.name
}

// Routes is a no-op, control modules only use the unified API
func (b *BaseModule) Routes(r chi.Router) {}

// StopChannel returns the stop channel for background tasks
func (b *BaseModule) StopChannel() <-chan struct{} {
	return b.stopCh
}

// StartBackgroundTasks does nothing by default
func (b *BaseModule) StartBackgroundTasks(ctx context.Context) {}

// Stop gracefully stops the module
func (b *BaseModule) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
		slog.Info("Module stopped", "module", b.name)
	})
}

// ControlsPrefix is the path every control endpoint lives under inside the API prefix
const ControlsPrefix = "/controls"

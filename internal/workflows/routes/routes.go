package routes

import (
	"context"

	"go-controls/internal/workflows/dto"
	"go-controls/internal/workflows/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the workflow type picker routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the workflow type picker routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "workflow-type-picker-workflow-types",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/workflow-type-picker/workflow-types",
		Summary:     "List workflow types",
		Description: "Returns the workflow types the caller may view with their category name",
		Tags:        []string{"Workflow Type Picker"},
	}, m.workflowTypesHandler)
}

func (m *Module) workflowTypesHandler(ctx context.Context, input *dto.WorkflowTypesInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.WorkflowTypes(ctx, p, input.Body.CategoryGuid, input.Body.IncludeInactive)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load workflow types")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

package routes

import (
	"context"

	"go-controls/internal/entitytypes/dto"
	"go-controls/internal/entitytypes/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the entity type picker routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the entity type picker routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "entity-type-picker-entity-types",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/entity-type-picker/entity-types",
		Summary:     "List entity types",
		Description: "Returns the entity types grouped as Common and All Entities, sorted by friendly name",
		Tags:        []string{"Entity Type Picker"},
	}, m.entityTypesHandler)
}

func (m *Module) entityTypesHandler(ctx context.Context, input *dto.EntityTypesInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)
	if !m.guard.Can(ctx, p, security.Object("entitytype", ""), security.ActionView) {
		return nil, huma.Error401Unauthorized("Not authorized to view entity types")
	}

	items, err := m.service.ListItems(ctx, input.Body.IncludeGlobalOption)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load entity types")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

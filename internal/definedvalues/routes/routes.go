package routes

import (
	"context"

	"go-controls/internal/definedvalues/dto"
	"go-controls/internal/definedvalues/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the defined value picker routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the defined value picker routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "defined-value-picker-defined-values",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/defined-value-picker/defined-values",
		Summary:     "List defined values",
		Description: "Returns the values of a defined type ordered by their configured order",
		Tags:        []string{"Defined Value Picker"},
	}, m.definedValuesHandler)

	huma.Register(api, huma.Operation{
		OperationID: "defined-value-picker-save-new-value",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/defined-value-picker/save-new-value",
		Summary:     "Add a defined value",
		Description: "Adds a value to a defined type. Requires edit access on the type",
		Tags:        []string{"Defined Value Picker"},
	}, m.saveNewValueHandler)
}

func (m *Module) definedValuesHandler(ctx context.Context, input *dto.DefinedValuesInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.GetValues(ctx, p, input.Body.DefinedTypeGuid, input.Body.IncludeInactive)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load defined values")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

func (m *Module) saveNewValueHandler(ctx context.Context, input *dto.SaveNewValueInput) (*dto.ListItemOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	item, err := m.service.SaveNewValue(ctx, p, input.Body.DefinedTypeGuid, input.Body.Value, input.Body.Description)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to save defined value")
	}
	return &dto.ListItemOutput{Body: *item}, nil
}

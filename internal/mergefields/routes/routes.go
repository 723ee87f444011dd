package routes

import (
	"context"

	"go-controls/internal/mergefields/dto"
	"go-controls/internal/mergefields/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the merge field picker routes
type Module struct {
	service *services.Service
}

// NewModule creates a new routes module
func NewModule(service *services.Service) *Module {
	return &Module{service: service}
}

// RegisterUnifiedRoutes registers the merge field picker routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "merge-field-picker-children",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/merge-field-picker/children",
		Summary:     "List merge fields",
		Description: "Returns the merge fields below a path. Navigation properties are folders",
		Tags:        []string{"Merge Field Picker"},
	}, m.childrenHandler)

	huma.Register(api, huma.Operation{
		OperationID: "merge-field-picker-format-value",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/merge-field-picker/format-value",
		Summary:     "Format a merge field",
		Tags:        []string{"Merge Field Picker"},
	}, m.formatValueHandler)
}

func (m *Module) childrenHandler(ctx context.Context, input *dto.ChildrenInput) (*dto.TreeItemsOutput, error) {
	items, err := m.service.Children(ctx, input.Body.ID, input.Body.AdditionalFields)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load merge fields")
	}
	return &dto.TreeItemsOutput{Body: items}, nil
}

func (m *Module) formatValueHandler(ctx context.Context, input *dto.FormatValueInput) (*dto.FormatValueOutput, error) {
	value, err := m.service.FormatValue(ctx, input.Body.ID)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to format merge field")
	}
	return &dto.FormatValueOutput{Body: dto.FormattedValue{Value: value}}, nil
}

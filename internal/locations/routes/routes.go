package routes

import (
	"context"

	"go-controls/internal/locations/dto"
	"go-controls/internal/locations/models"
	"go-controls/internal/locations/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the location picker routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the location picker routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "location-item-picker-children",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/location-item-picker/children",
		Summary:     "Get child locations",
		Tags:        []string{"Location Pickers"},
	}, m.childrenHandler)

	huma.Register(api, huma.Operation{
		OperationID: "location-list-locations",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/location-list/locations",
		Summary:     "List named locations",
		Tags:        []string{"Location Pickers"},
	}, m.locationsHandler)

	huma.Register(api, huma.Operation{
		OperationID: "location-picker-address",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/location-picker/address",
		Summary:     "Find or create an address location",
		Tags:        []string{"Location Pickers"},
	}, m.addressHandler)

	huma.Register(api, huma.Operation{
		OperationID: "location-list-save-location",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/location-list/save-location",
		Summary:     "Create a named location",
		Description: "Requires edit access on locations",
		Tags:        []string{"Location Pickers"},
	}, m.saveLocationHandler)
}

func toAddress(body dto.AddressBody) models.Address {
	return models.Address{
		Street1:    body.Street1,
		Street2:    body.Street2,
		City:       body.City,
		State:      body.State,
		PostalCode: body.PostalCode,
		Country:    body.Country,
	}
}

func (m *Module) childrenHandler(ctx context.Context, input *dto.ChildrenInput) (*dto.TreeItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Children(ctx, p, input.Body.Guid, input.Body.RootLocationGuid, input.Body.IncludeInactive)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load locations")
	}
	return &dto.TreeItemsOutput{Body: items}, nil
}

func (m *Module) locationsHandler(ctx context.Context, input *dto.LocationsInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.List(ctx, p, input.Body.LocationTypeValueGuid, input.Body.ParentLocationGuid, input.Body.ShowCityState)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load locations")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

func (m *Module) addressHandler(ctx context.Context, input *dto.AddressInput) (*dto.ListItemOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	item, err := m.service.FindOrCreateAddress(ctx, p, toAddress(input.Body.AddressBody))
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to save address")
	}
	return &dto.ListItemOutput{Body: *item}, nil
}

func (m *Module) saveLocationHandler(ctx context.Context, input *dto.SaveLocationInput) (*dto.ListItemOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	req := services.SaveLocationRequest{
		Name:                  input.Body.Name,
		ParentLocationGuid:    input.Body.ParentLocationGuid,
		LocationTypeValueGuid: input.Body.LocationTypeValueGuid,
	}
	if input.Body.Address != nil {
		address := toAddress(*input.Body.Address)
		req.Address = &address
	}

	item, err := m.service.SaveLocation(ctx, p, req)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to save location")
	}
	return &dto.ListItemOutput{Body: *item}, nil
}

package routes

import (
	"context"

	"go-controls/internal/pages/dto"
	"go-controls/internal/pages/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the page picker routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the page picker routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "page-picker-children",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/page-picker/children",
		Summary:     "List child pages",
		Tags:        []string{"Page Picker"},
	}, m.childrenHandler)

	huma.Register(api, huma.Operation{
		OperationID: "page-picker-selected-ancestors",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/page-picker/selected-ancestors",
		Summary:     "List ancestors of selected pages",
		Tags:        []string{"Page Picker"},
	}, m.selectedAncestorsHandler)

	huma.Register(api, huma.Operation{
		OperationID: "page-picker-routes",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/page-picker/routes",
		Summary:     "List page routes",
		Tags:        []string{"Page Picker"},
	}, m.routesHandler)

	huma.Register(api, huma.Operation{
		OperationID: "page-picker-page-url",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/page-picker/page-url",
		Summary:     "Resolve a page URL",
		Tags:        []string{"Page Picker"},
	}, m.pageURLHandler)
}

func (m *Module) childrenHandler(ctx context.Context, input *dto.ChildrenInput) (*dto.TreeItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Children(ctx, p, input.Body.Guid, input.Body.RootPageGuid, input.Body.HidePageGuids)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load pages")
	}
	return &dto.TreeItemsOutput{Body: items}, nil
}

func (m *Module) selectedAncestorsHandler(ctx context.Context, input *dto.SelectedAncestorsInput) (*dto.GuidsOutput, error) {
	guids, err := m.service.SelectedAncestors(ctx, input.Body.SelectedGuids, input.Body.RootPageGuid)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load page ancestors")
	}
	return &dto.GuidsOutput{Body: guids}, nil
}

func (m *Module) routesHandler(ctx context.Context, input *dto.RoutesInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Routes(ctx, p, input.Body.PageGuid)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load page routes")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

func (m *Module) pageURLHandler(ctx context.Context, input *dto.PageURLInput) (*dto.PageURLOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	url, err := m.service.PageURL(ctx, p, input.Body.PageGuid, input.Body.RouteGuid)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to resolve page URL")
	}
	return &dto.PageURLOutput{Body: dto.PageURLBag{URL: url}}, nil
}

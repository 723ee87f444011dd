package routes

import (
	"context"

	"go-controls/internal/accounts/dto"
	"go-controls/internal/accounts/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the account picker routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the account picker routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "account-picker-children",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/account-picker/children",
		Summary:     "Get child accounts",
		Tags:        []string{"Account Picker"},
	}, m.childrenHandler)

	huma.Register(api, huma.Operation{
		OperationID: "account-picker-search",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/account-picker/search",
		Summary:     "Search accounts",
		Description: "Searches accounts by name. Results are ranked by edit distance to the search term",
		Tags:        []string{"Account Picker"},
	}, m.searchHandler)

	huma.Register(api, huma.Operation{
		OperationID: "account-picker-parent-guids",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/account-picker/parent-guids",
		Summary:     "Get ancestors of selected accounts",
		Tags:        []string{"Account Picker"},
	}, m.parentGuidsHandler)
}

func (m *Module) childrenHandler(ctx context.Context, input *dto.ChildrenInput) (*dto.TreeItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Children(ctx, p, services.ChildrenOptions{
		ParentGuid:        input.Body.ParentGuid,
		IncludeInactive:   input.Body.IncludeInactive,
		DisplayPublicName: input.Body.DisplayPublicName,
		LoadAll:           input.Body.LoadAll,
	})
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load accounts")
	}
	return &dto.TreeItemsOutput{Body: items}, nil
}

func (m *Module) searchHandler(ctx context.Context, input *dto.SearchInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Search(ctx, p, input.Body.SearchTerm, input.Body.IncludeInactive, input.Body.DisplayPublicName)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to search accounts")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

func (m *Module) parentGuidsHandler(ctx context.Context, input *dto.ParentGuidsInput) (*dto.GuidsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	guids, err := m.service.ParentGuids(ctx, p, input.Body.Guids)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to resolve account ancestors")
	}
	return &dto.GuidsOutput{Body: guids}, nil
}

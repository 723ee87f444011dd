package routes

import (
	"context"

	"go-controls/internal/categories/dto"
	"go-controls/internal/categories/models"
	"go-controls/internal/categories/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the category picker routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the category picker routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-picker-children",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/category-picker/children",
		Summary:     "Get child categories",
		Description: "Returns the categories below a parent, optionally with the items filed under them",
		Tags:        []string{"Category Picker"},
	}, m.childrenHandler)

	huma.Register(api, huma.Operation{
		OperationID: "category-picker-search",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/category-picker/search",
		Summary:     "Search categories",
		Tags:        []string{"Category Picker"},
	}, m.searchHandler)
}

func (m *Module) childrenHandler(ctx context.Context, input *dto.ChildrenInput) (*dto.TreeItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Children(ctx, p, services.ChildrenOptions{
		ParentGuid: input.Body.ParentGuid,
		Scope: models.Scope{
			EntityTypeGuid:  input.Body.EntityTypeGuid,
			QualifierColumn: input.Body.EntityTypeQualifierColumn,
			QualifierValue:  input.Body.EntityTypeQualifierValue,
		},
		IncludeCategoryGuids: input.Body.IncludeCategoryGuids,
		ExcludeCategoryGuids: input.Body.ExcludeCategoryGuids,
		LoadAll:              input.Body.LoadAll,
		GetCategorizedItems:  input.Body.GetCategorizedItems,
		IncludeInactiveItems: input.Body.IncludeInactiveItems,
		DefaultIconCssClass:  input.Body.DefaultIconCssClass,
	})
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load categories")
	}
	return &dto.TreeItemsOutput{Body: items}, nil
}

func (m *Module) searchHandler(ctx context.Context, input *dto.SearchInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Search(ctx, p, input.Body.EntityTypeGuid, input.Body.SearchTerm)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to search categories")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

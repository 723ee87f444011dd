package routes

import (
	"context"

	"go-controls/internal/badges/dto"
	"go-controls/internal/badges/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the badge routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the badge picker and badge list routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "badge-picker-badges",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/badge-picker/badges",
		Summary:     "List badges",
		Tags:        []string{"Badges"},
	}, m.badgesHandler)

	huma.Register(api, huma.Operation{
		OperationID: "badge-list-badges",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/badge-list/badges",
		Summary:     "Render entity badges",
		Description: "Renders the active badges of an entity. Badges whose template fails are omitted",
		Tags:        []string{"Badges"},
	}, m.renderBadgesHandler)
}

func (m *Module) badgesHandler(ctx context.Context, input *dto.BadgesInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.PickerItems(ctx, p)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load badges")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

func (m *Module) renderBadgesHandler(ctx context.Context, input *dto.RenderBadgesInput) (*dto.RenderedBadgesOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	rendered, err := m.service.Render(ctx, p, input.Body.EntityTypeGuid, input.Body.EntityKey, input.Body.BadgeTypeGuids)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to render badges")
	}
	return &dto.RenderedBadgesOutput{Body: rendered}, nil
}

package routes

import (
	"context"

	"go-controls/internal/media/dto"
	"go-controls/internal/media/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the media element picker routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// RegisterUnifiedRoutes registers the media element picker routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "media-element-picker-media-accounts",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/media-element-picker/media-accounts",
		Summary:     "List media accounts",
		Tags:        []string{"Media Element Picker"},
	}, m.accountsHandler)

	huma.Register(api, huma.Operation{
		OperationID: "media-element-picker-media-folders",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/media-element-picker/media-folders",
		Summary:     "List media folders of an account",
		Tags:        []string{"Media Element Picker"},
	}, m.foldersHandler)

	huma.Register(api, huma.Operation{
		OperationID: "media-element-picker-media-elements",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/media-element-picker/media-elements",
		Summary:     "List media elements of a folder",
		Tags:        []string{"Media Element Picker"},
	}, m.elementsHandler)

	huma.Register(api, huma.Operation{
		OperationID: "media-element-picker-media-tree",
		Method:      "POST",
		Path:        module.ControlsPrefix + "/media-element-picker/media-tree",
		Summary:     "Resolve a media selection",
		Description: "Resolves the account and folder of a selection and returns the lists of every level",
		Tags:        []string{"Media Element Picker"},
	}, m.treeHandler)
}

func (m *Module) accountsHandler(ctx context.Context, input *dto.MediaAccountsInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Accounts(ctx, p)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load media accounts")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

func (m *Module) foldersHandler(ctx context.Context, input *dto.MediaFoldersInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Folders(ctx, p, input.Body.MediaAccountGuid)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load media folders")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

func (m *Module) elementsHandler(ctx context.Context, input *dto.MediaElementsInput) (*dto.ListItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Elements(ctx, p, input.Body.MediaFolderGuid)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load media elements")
	}
	return &dto.ListItemsOutput{Body: items}, nil
}

func (m *Module) treeHandler(ctx context.Context, input *dto.MediaTreeInput) (*dto.MediaTreeOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	tree, err := m.service.Tree(ctx, p, input.Body.MediaAccountGuid, input.Body.MediaFolderGuid, input.Body.MediaElementGuid)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to load media tree")
	}
	return &dto.MediaTreeOutput{Body: *tree}, nil
}

package routes

import (
	"context"

	"go-controls/internal/assets/dto"
	"go-controls/internal/assets/services"
	"go-controls/pkg/handlers"
	"go-controls/pkg/module"
	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the asset manager routes
type Module struct {
	service *services.Service
	guard   *security.Guard
}

// NewModule creates a new routes module
func NewModule(service *services.Service, guard *security.Guard) *Module {
	return &Module{service: service, guard: guard}
}

// uploadBodyBytes leaves room for the base64 encoding of a file at the service's size limit
const uploadBodyBytes = 34 << 20

func operation(id, summary string) huma.Operation {
	return huma.Operation{
		OperationID: "asset-manager-" + id,
		Method:      "POST",
		Path:        module.ControlsPrefix + "/asset-manager/" + id,
		Summary:     summary,
		Tags:        []string{"Asset Manager"},
	}
}

// RegisterUnifiedRoutes registers the asset manager routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, operation("folders", "List asset folders"), m.foldersHandler)
	huma.Register(api, operation("files", "List files in an asset folder"), m.filesHandler)
	huma.Register(api, operation("create-folder", "Create an asset folder"), m.createFolderHandler)
	huma.Register(api, operation("rename-folder", "Rename an asset folder"), m.renameFolderHandler)
	huma.Register(api, operation("delete-folder", "Delete an asset folder"), m.deleteFolderHandler)
	upload := operation("upload-file", "Upload a file")
	upload.MaxBodyBytes = uploadBodyBytes
	huma.Register(api, upload, m.uploadFileHandler)
	huma.Register(api, operation("rename-file", "Rename a file"), m.renameFileHandler)
	huma.Register(api, operation("delete-file", "Delete a file"), m.deleteFileHandler)
}

func (m *Module) foldersHandler(ctx context.Context, input *dto.FoldersInput) (*dto.TreeItemsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	items, err := m.service.Folders(ctx, p, input.Body.Path, input.Body.LoadAll)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to list asset folders")
	}
	return &dto.TreeItemsOutput{Body: items}, nil
}

func (m *Module) filesHandler(ctx context.Context, input *dto.FilesInput) (*dto.AssetsOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	files, err := m.service.Files(ctx, p, input.Body.Folder)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to list asset files")
	}
	return &dto.AssetsOutput{Body: files}, nil
}

func (m *Module) createFolderHandler(ctx context.Context, input *dto.CreateFolderInput) (*dto.PathOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	path, err := m.service.CreateFolder(ctx, p, input.Body.Parent, input.Body.Name)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to create folder")
	}
	return &dto.PathOutput{Body: dto.PathBag{Path: path}}, nil
}

func (m *Module) renameFolderHandler(ctx context.Context, input *dto.RenameFolderInput) (*dto.PathOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	path, err := m.service.RenameFolder(ctx, p, input.Body.Folder, input.Body.NewName)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to rename folder")
	}
	return &dto.PathOutput{Body: dto.PathBag{Path: path}}, nil
}

func (m *Module) deleteFolderHandler(ctx context.Context, input *dto.DeleteFolderInput) (*dto.EmptyOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	if err := m.service.DeleteFolder(ctx, p, input.Body.Folder); err != nil {
		return nil, handlers.ToHumaError(err, "Failed to delete folder")
	}
	return &dto.EmptyOutput{}, nil
}

func (m *Module) uploadFileHandler(ctx context.Context, input *dto.UploadFileInput) (*dto.AssetOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	asset, err := m.service.UploadFile(ctx, p, input.Body.Folder, input.Body.FileName, input.Body.ContentBase64)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to upload file")
	}
	return &dto.AssetOutput{Body: *asset}, nil
}

func (m *Module) renameFileHandler(ctx context.Context, input *dto.RenameFileInput) (*dto.AssetOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	asset, err := m.service.RenameFile(ctx, p, input.Body.File, input.Body.NewName)
	if err != nil {
		return nil, handlers.ToHumaError(err, "Failed to rename file")
	}
	return &dto.AssetOutput{Body: *asset}, nil
}

func (m *Module) deleteFileHandler(ctx context.Context, input *dto.DeleteFileInput) (*dto.EmptyOutput, error) {
	p := m.guard.Principal(ctx, input.AuthHeaders, input.Body.SecurityGrantToken)

	if err := m.service.DeleteFile(ctx, p, input.Body.File); err != nil {
		return nil, handlers.ToHumaError(err, "Failed to delete file")
	}
	return &dto.EmptyOutput{}, nil
}

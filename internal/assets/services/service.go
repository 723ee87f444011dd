package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"go-controls/internal/assets/dto"
	"go-controls/pkg/bags"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"
	"go-controls/pkg/tree"

	"github.com/go-playground/validator/v10"
)

const maxUploadBytes = 25 << 20

var assetObject = security.Object("asset", "")

// Service handles business logic for the asset manager
type Service struct {
	storage  *Storage
	authz    security.Checker
	validate *validator.Validate
}

// NewService creates a new service instance
func NewService(storage *Storage, authz security.Checker) (*Service, error) {
	validate := validator.New()
	if err := dto.RegisterCustomValidators(validate); err != nil {
		return nil, err
	}
	return &Service{storage: storage, authz: authz, validate: validate}, nil
}

func (s *Service) require(ctx context.Context, p *security.Principal, action string) error {
	if !s.authz.Can(ctx, p, assetObject, action) {
		return fmt.Errorf("%s access to assets is required: %w", action, handlers.ErrUnauthorized)
	}
	return nil
}

func (s *Service) checkName(name string) error {
	return handlers.ValidateStruct(s.validate, dto.NameCheck{Name: name})
}

// Folders returns the folder tree below folder
func (s *Service) Folders(ctx context.Context, p *security.Principal, folder string, loadAll bool) ([]*bags.TreeItemBag, error) {
	if err := s.require(ctx, p, security.ActionView); err != nil {
		return nil, err
	}
	folder, err := clean(folder)
	if err != nil {
		return nil, err
	}
	return tree.Build(ctx, s.storage, folder, tree.Options{LoadAll: loadAll})
}

// Files lists the files of a folder
func (s *Service) Files(ctx context.Context, p *security.Principal, folder string) ([]dto.AssetBag, error) {
	if err := s.require(ctx, p, security.ActionView); err != nil {
		return nil, err
	}
	return s.storage.Files(folder)
}

// CreateFolder creates a folder and returns its path
func (s *Service) CreateFolder(ctx context.Context, p *security.Principal, parent, name string) (string, error) {
	if err := s.require(ctx, p, security.ActionEdit); err != nil {
		return "", err
	}
	if err := s.checkName(name); err != nil {
		return "", err
	}
	return s.storage.CreateFolder(parent, name)
}

// RenameFolder renames a folder and returns its new path
func (s *Service) RenameFolder(ctx context.Context, p *security.Principal, folder, newName string) (string, error) {
	if err := s.require(ctx, p, security.ActionEdit); err != nil {
		return "", err
	}
	if err := s.checkName(newName); err != nil {
		return "", err
	}
	return s.storage.RenameFolder(folder, newName)
}

// DeleteFolder deletes a folder with its content
func (s *Service) DeleteFolder(ctx context.Context, p *security.Principal, folder string) error {
	if err := s.require(ctx, p, security.ActionEdit); err != nil {
		return err
	}
	return s.storage.DeleteFolder(folder)
}

// UploadFile decodes contentBase64 and stores it as a new file
func (s *Service) UploadFile(ctx context.Context, p *security.Principal, folder, fileName, contentBase64 string) (*dto.AssetBag, error) {
	if err := s.require(ctx, p, security.ActionEdit); err != nil {
		return nil, err
	}
	if err := s.checkName(fileName); err != nil {
		return nil, err
	}
	if base64.StdEncoding.DecodedLen(len(contentBase64)) > maxUploadBytes {
		return nil, fmt.Errorf("file is larger than %d bytes: %w", maxUploadBytes, handlers.ErrInvalid)
	}

	content, err := base64.StdEncoding.DecodeString(contentBase64)
	if err != nil {
		return nil, fmt.Errorf("file content is not valid base64: %w", handlers.ErrInvalid)
	}

	asset, err := s.storage.WriteFile(folder, fileName, content)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// RenameFile renames a file within its folder
func (s *Service) RenameFile(ctx context.Context, p *security.Principal, file, newName string) (*dto.AssetBag, error) {
	if err := s.require(ctx, p, security.ActionEdit); err != nil {
		return nil, err
	}
	if err := s.checkName(newName); err != nil {
		return nil, err
	}
	asset, err := s.storage.RenameFile(file, newName)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// DeleteFile deletes a file
func (s *Service) DeleteFile(ctx context.Context, p *security.Principal, file string) error {
	if err := s.require(ctx, p, security.ActionEdit); err != nil {
		return err
	}
	return s.storage.DeleteFile(file)
}

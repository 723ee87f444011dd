package services

import (
	"context"
	"fmt"

	"go-controls/internal/media/dto"
	"go-controls/internal/media/models"
	"go-controls/pkg/bags"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"
)

// Store is the persistence the service needs; *Repository implements it
type Store interface {
	Accounts(ctx context.Context) ([]models.MediaAccount, error)
	Folders(ctx context.Context, accountGuid string) ([]models.MediaFolder, error)
	Elements(ctx context.Context, folderGuid string) ([]models.MediaElement, error)
	GetAccount(ctx context.Context, guid string) (*models.MediaAccount, error)
	GetFolder(ctx context.Context, guid string) (*models.MediaFolder, error)
	GetElement(ctx context.Context, guid string) (*models.MediaElement, error)
}

// Service handles business logic for the media element picker
type Service struct {
	store Store
	authz security.Checker
}

// NewService creates a new service instance
func NewService(store Store, authz security.Checker) *Service {
	return &Service{store: store, authz: authz}
}

func (s *Service) canView(ctx context.Context, p *security.Principal, accountGuid string) bool {
	return s.authz.Can(ctx, p, security.Object("mediaaccount", accountGuid), security.ActionView)
}

// Accounts lists the media accounts the caller may view
func (s *Service) Accounts(ctx context.Context, p *security.Principal) ([]bags.ListItemBag, error) {
	accounts, err := s.store.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]bags.ListItemBag, 0, len(accounts))
	for _, account := range accounts {
		if s.canView(ctx, p, account.Guid) {
			items = append(items, bags.ListItemBag{Value: account.Guid, Text: account.Name})
		}
	}
	return items, nil
}

func (s *Service) account(ctx context.Context, p *security.Principal, guid string) (*models.MediaAccount, error) {
	account, err := s.store.GetAccount(ctx, guid)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("media account %s: %w", guid, handlers.ErrNotFound)
	}
	if !s.canView(ctx, p, account.Guid) {
		return nil, fmt.Errorf("viewing media account %s: %w", account.Name, handlers.ErrUnauthorized)
	}
	return account, nil
}

func (s *Service) folder(ctx context.Context, guid string) (*models.MediaFolder, error) {
	folder, err := s.store.GetFolder(ctx, guid)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, fmt.Errorf("media folder %s: %w", guid, handlers.ErrNotFound)
	}
	return folder, nil
}

func (s *Service) folderItems(ctx context.Context, accountGuid string) ([]bags.ListItemBag, error) {
	folders, err := s.store.Folders(ctx, accountGuid)
	if err != nil {
		return nil, err
	}
	items := make([]bags.ListItemBag, 0, len(folders))
	for _, folder := range folders {
		items = append(items, bags.ListItemBag{Value: folder.Guid, Text: folder.Name})
	}
	return items, nil
}

func (s *Service) elementItems(ctx context.Context, folderGuid string) ([]bags.ListItemBag, error) {
	elements, err := s.store.Elements(ctx, folderGuid)
	if err != nil {
		return nil, err
	}
	items := make([]bags.ListItemBag, 0, len(elements))
	for _, element := range elements {
		items = append(items, bags.ListItemBag{Value: element.Guid, Text: element.Name})
	}
	return items, nil
}

// Folders lists the folders of an account
func (s *Service) Folders(ctx context.Context, p *security.Principal, accountGuid string) ([]bags.ListItemBag, error) {
	account, err := s.account(ctx, p, accountGuid)
	if err != nil {
		return nil, err
	}
	return s.folderItems(ctx, account.Guid)
}

// Elements lists the elements of a folder
func (s *Service) Elements(ctx context.Context, p *security.Principal, folderGuid string) ([]bags.ListItemBag, error) {
	folder, err := s.folder(ctx, folderGuid)
	if err != nil {
		return nil, err
	}
	if _, err := s.account(ctx, p, folder.MediaAccountGuid); err != nil {
		return nil, err
	}
	return s.elementItems(ctx, folder.Guid)
}

// Tree resolves a selection upward, from the element to its folder to its
// account, and returns the lists of each level
func (s *Service) Tree(ctx context.Context, p *security.Principal, accountGuid, folderGuid, elementGuid string) (*dto.MediaTreeBag, error) {
	result := &dto.MediaTreeBag{MediaFolders: []bags.ListItemBag{}, MediaElements: []bags.ListItemBag{}}

	if elementGuid != "" {
		element, err := s.store.GetElement(ctx, elementGuid)
		if err != nil {
			return nil, err
		}
		if element == nil {
			return nil, fmt.Errorf("media element %s: %w", elementGuid, handlers.ErrNotFound)
		}
		result.MediaElement = &bags.ListItemBag{Value: element.Guid, Text: element.Name}
		folderGuid = element.MediaFolderGuid
	}

	if folderGuid != "" {
		folder, err := s.folder(ctx, folderGuid)
		if err != nil {
			return nil, err
		}
		result.MediaFolder = &bags.ListItemBag{Value: folder.Guid, Text: folder.Name}
		accountGuid = folder.MediaAccountGuid
	}

	accounts, err := s.Accounts(ctx, p)
	if err != nil {
		return nil, err
	}
	result.MediaAccounts = accounts

	if accountGuid == "" {
		return result, nil
	}

	account, err := s.account(ctx, p, accountGuid)
	if err != nil {
		return nil, err
	}
	result.MediaAccount = &bags.ListItemBag{Value: account.Guid, Text: account.Name}

	if result.MediaFolders, err = s.folderItems(ctx, account.Guid); err != nil {
		return nil, err
	}
	if result.MediaFolder != nil {
		if result.MediaElements, err = s.elementItems(ctx, result.MediaFolder.Value); err != nil {
			return nil, err
		}
	}
	return result, nil
}

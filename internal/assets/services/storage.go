package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go-controls/internal/assets/dto"
	"go-controls/pkg/handlers"
	"go-controls/pkg/tree"

	"github.com/gabriel-vasile/mimetype"
)

// Storage is a folder tree on the local disk. Every path it accepts or
// returns is relative to root and uses forward slashes.
type Storage struct {
	root string
}

// NewStorage opens root, creating it when missing
func NewStorage(root string) (*Storage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve asset root %s: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset root %s: %w", abs, err)
	}
	return &Storage{root: abs}, nil
}

// clean normalizes a relative path. "" is the root; ".." segments are refused
// even when they would stay inside the root.
func clean(rel string) (string, error) {
	rel = strings.ReplaceAll(strings.TrimSpace(rel), `\`, "/")
	for _, segment := range strings.Split(rel, "/") {
		if segment == ".." {
			return "", fmt.Errorf("path %s leaves the asset root: %w", rel, handlers.ErrInvalid)
		}
	}
	return strings.TrimPrefix(path.Clean("/"+rel), "/"), nil
}

// abs maps a cleaned relative path onto the disk and checks it stays under root
func (s *Storage) abs(rel string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	back, err := filepath.Rel(s.root, full)
	if err != nil || back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s leaves the asset root: %w", rel, handlers.ErrInvalid)
	}
	return full, nil
}

// stat resolves rel and requires it to exist as a folder (dir) or a file
func (s *Storage) stat(rel string, dir bool) (string, string, os.FileInfo, error) {
	rel, err := clean(rel)
	if err != nil {
		return "", "", nil, err
	}
	full, err := s.abs(rel)
	if err != nil {
		return "", "", nil, err
	}

	kind := "file"
	if dir {
		kind = "folder"
	}

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", nil, fmt.Errorf("%s %s: %w", kind, displayPath(rel), handlers.ErrNotFound)
		}
		return "", "", nil, fmt.Errorf("failed to read %s %s: %w", kind, displayPath(rel), err)
	}
	if info.IsDir() != dir {
		return "", "", nil, fmt.Errorf("%s %s: %w", kind, displayPath(rel), handlers.ErrNotFound)
	}
	return rel, full, info, nil
}

func displayPath(rel string) string {
	return "/" + rel
}

// ensureFree fails with ErrConflict when full already exists
func ensureFree(full, rel string) error {
	_, err := os.Lstat(full)
	if err == nil {
		return fmt.Errorf("%s already exists: %w", displayPath(rel), handlers.ErrConflict)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", displayPath(rel), err)
	}
	return nil
}

// Children implements tree.Source over the sub folders of parent
func (s *Storage) Children(ctx context.Context, parent string) ([]tree.Node, error) {
	parent, full, _, err := s.stat(parent, true)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(full)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", displayPath(parent), err)
	}

	nodes := make([]tree.Node, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		nodes = append(nodes, tree.Node{
			Guid:         path.Join(parent, entry.Name()),
			ParentGuid:   parent,
			Name:         entry.Name(),
			IsActive:     true,
			IsFolder:     true,
			IconCssClass: "fa fa-folder",
		})
	}
	return nodes, nil
}

// Files lists the files of a folder by name
func (s *Storage) Files(folder string) ([]dto.AssetBag, error) {
	folder, full, _, err := s.stat(folder, true)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(full)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", displayPath(folder), err)
	}

	files := make([]dto.AssetBag, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, s.describe(path.Join(folder, entry.Name()), info))
	}

	sort.SliceStable(files, func(i, j int) bool {
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})
	return files, nil
}

func (s *Storage) describe(rel string, info os.FileInfo) dto.AssetBag {
	contentType := "application/octet-stream"
	if mtype, err := mimetype.DetectFile(filepath.Join(s.root, filepath.FromSlash(rel))); err == nil {
		contentType = mtype.String()
	}
	return dto.AssetBag{
		Name:        info.Name(),
		Path:        rel,
		Size:        info.Size(),
		ContentType: contentType,
		Modified:    info.ModTime().UTC(),
	}
}

// CreateFolder creates name inside parent and returns its path
func (s *Storage) CreateFolder(parent, name string) (string, error) {
	parent, full, _, err := s.stat(parent, true)
	if err != nil {
		return "", err
	}

	rel := path.Join(parent, name)
	target := filepath.Join(full, name)
	if err := ensureFree(target, rel); err != nil {
		return "", err
	}
	if err := os.Mkdir(target, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", displayPath(rel), err)
	}
	return rel, nil
}

// rename moves rel to a sibling called newName
func (s *Storage) rename(rel, full, newName string) (string, error) {
	target := filepath.Join(filepath.Dir(full), newName)
	newRel := path.Join(path.Dir(rel), newName)
	if newRel == rel {
		return rel, nil
	}
	if err := ensureFree(target, newRel); err != nil {
		return "", err
	}
	if err := os.Rename(full, target); err != nil {
		return "", fmt.Errorf("failed to rename %s: %w", displayPath(rel), err)
	}
	return newRel, nil
}

// RenameFolder renames a folder in place; the root cannot be renamed
func (s *Storage) RenameFolder(folder, newName string) (string, error) {
	folder, full, _, err := s.stat(folder, true)
	if err != nil {
		return "", err
	}
	if folder == "" {
		return "", fmt.Errorf("the asset root cannot be renamed: %w", handlers.ErrInvalid)
	}
	return s.rename(folder, full, newName)
}

// DeleteFolder removes a folder and everything in it; the root cannot be deleted
func (s *Storage) DeleteFolder(folder string) error {
	folder, full, _, err := s.stat(folder, true)
	if err != nil {
		return err
	}
	if folder == "" {
		return fmt.Errorf("the asset root cannot be deleted: %w", handlers.ErrInvalid)
	}
	if err := os.RemoveAll(full); err != nil {
		return fmt.Errorf("failed to delete folder %s: %w", displayPath(folder), err)
	}
	return nil
}

// WriteFile stores content as a new file in folder
func (s *Storage) WriteFile(folder, name string, content []byte) (dto.AssetBag, error) {
	folder, full, _, err := s.stat(folder, true)
	if err != nil {
		return dto.AssetBag{}, err
	}

	rel := path.Join(folder, name)
	target := filepath.Join(full, name)
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return dto.AssetBag{}, fmt.Errorf("%s already exists: %w", displayPath(rel), handlers.ErrConflict)
		}
		return dto.AssetBag{}, fmt.Errorf("failed to create file %s: %w", displayPath(rel), err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(target)
		return dto.AssetBag{}, fmt.Errorf("failed to write file %s: %w", displayPath(rel), err)
	}
	if err := f.Close(); err != nil {
		return dto.AssetBag{}, fmt.Errorf("failed to write file %s: %w", displayPath(rel), err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return dto.AssetBag{}, fmt.Errorf("failed to read file %s: %w", displayPath(rel), err)
	}
	return s.describe(rel, info), nil
}

// RenameFile renames a file within its folder
func (s *Storage) RenameFile(file, newName string) (dto.AssetBag, error) {
	file, full, _, err := s.stat(file, false)
	if err != nil {
		return dto.AssetBag{}, err
	}
	newRel, err := s.rename(file, full, newName)
	if err != nil {
		return dto.AssetBag{}, err
	}

	info, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(newRel)))
	if err != nil {
		return dto.AssetBag{}, fmt.Errorf("failed to read file %s: %w", displayPath(newRel), err)
	}
	return s.describe(newRel, info), nil
}

// DeleteFile removes a file
func (s *Storage) DeleteFile(file string) error {
	file, full, _, err := s.stat(file, false)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", displayPath(file), err)
	}
	return nil
}

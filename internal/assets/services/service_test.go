package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-controls/pkg/handlers"
	"go-controls/pkg/security/securitytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func newService(t *testing.T) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images", "icons"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "logo.png"), pngHeader, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "About.txt"), []byte("hello"), 0o644))

	storage, err := NewStorage(root)
	require.NoError(t, err)
	s, err := NewService(storage, securitytest.AllowAll)
	require.NoError(t, err)
	return s, root
}

func TestService_Folders(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	items, err := s.Folders(ctx, nil, "", false)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "docs", items[0].Value)
	assert.False(t, items[0].HasChildren)
	assert.Equal(t, "images", items[1].Value)
	assert.True(t, items[1].HasChildren)
	assert.Nil(t, items[1].Children)

	items, err = s.Folders(ctx, nil, "", true)
	require.NoError(t, err)
	require.Len(t, items[1].Children, 1)
	assert.Equal(t, "images/icons", items[1].Children[0].Value)

	_, err = s.Folders(ctx, nil, "missing", false)
	assert.True(t, errors.Is(err, handlers.ErrNotFound))

	_, err = s.Folders(ctx, nil, "../etc", false)
	assert.True(t, errors.Is(err, handlers.ErrInvalid))
}

func TestService_Files(t *testing.T) {
	s, _ := newService(t)

	files, err := s.Files(context.Background(), nil, "/images")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "About.txt", files[0].Name)
	assert.Equal(t, "images/About.txt", files[0].Path)
	assert.Contains(t, files[0].ContentType, "text/plain")
	assert.Equal(t, "logo.png", files[1].Name)
	assert.Equal(t, "image/png", files[1].ContentType)
	assert.Equal(t, int64(len(pngHeader)), files[1].Size)

	_, err = s.Files(context.Background(), nil, "images/logo.png")
	assert.True(t, errors.Is(err, handlers.ErrNotFound), "a file is not a folder")
}

func TestService_FolderMutations(t *testing.T) {
	s, root := newService(t)
	ctx := context.Background()

	path, err := s.CreateFolder(ctx, nil, "docs", "2026")
	require.NoError(t, err)
	assert.Equal(t, "docs/2026", path)
	assert.DirExists(t, filepath.Join(root, "docs", "2026"))

	_, err = s.CreateFolder(ctx, nil, "docs", "2026")
	assert.True(t, errors.Is(err, handlers.ErrConflict))

	_, err = s.CreateFolder(ctx, nil, "nowhere", "x")
	assert.True(t, errors.Is(err, handlers.ErrNotFound))

	for _, name := range []string{"", "..", ".cache", "a/b", `a\b`, " padded", "bad?"} {
		_, err = s.CreateFolder(ctx, nil, "docs", name)
		assert.True(t, errors.Is(err, handlers.ErrInvalid), "name %q", name)
	}

	path, err = s.RenameFolder(ctx, nil, "docs/2026", "archive")
	require.NoError(t, err)
	assert.Equal(t, "docs/archive", path)

	_, err = s.RenameFolder(ctx, nil, "images", "docs")
	assert.True(t, errors.Is(err, handlers.ErrConflict))

	_, err = s.RenameFolder(ctx, nil, "", "root")
	assert.True(t, errors.Is(err, handlers.ErrInvalid))

	require.NoError(t, s.DeleteFolder(ctx, nil, "images"))
	assert.NoDirExists(t, filepath.Join(root, "images"))

	assert.True(t, errors.Is(s.DeleteFolder(ctx, nil, "images"), handlers.ErrNotFound))
	assert.True(t, errors.Is(s.DeleteFolder(ctx, nil, "/"), handlers.ErrInvalid))
}

func TestService_FileMutations(t *testing.T) {
	s, root := newService(t)
	ctx := context.Background()

	content := base64.StdEncoding.EncodeToString(pngHeader)
	asset, err := s.UploadFile(ctx, nil, "docs", "scan.png", content)
	require.NoError(t, err)
	assert.Equal(t, "docs/scan.png", asset.Path)
	assert.Equal(t, "image/png", asset.ContentType)

	_, err = s.UploadFile(ctx, nil, "docs", "scan.png", content)
	assert.True(t, errors.Is(err, handlers.ErrConflict))

	_, err = s.UploadFile(ctx, nil, "docs", "bad.png", "%%%")
	assert.True(t, errors.Is(err, handlers.ErrInvalid))

	_, err = s.UploadFile(ctx, nil, "../../tmp", "x.png", content)
	assert.True(t, errors.Is(err, handlers.ErrInvalid))

	for _, name := range []string{".notes", ".htaccess", "."} {
		_, err = s.UploadFile(ctx, nil, "docs", name, content)
		assert.True(t, errors.Is(err, handlers.ErrInvalid), "name %q", name)
	}

	asset, err = s.RenameFile(ctx, nil, "docs/scan.png", "receipt.png")
	require.NoError(t, err)
	assert.Equal(t, "docs/receipt.png", asset.Path)
	assert.FileExists(t, filepath.Join(root, "docs", "receipt.png"))

	_, err = s.RenameFile(ctx, nil, "docs/receipt.png", "../receipt.png")
	assert.True(t, errors.Is(err, handlers.ErrInvalid))

	_, err = s.RenameFile(ctx, nil, "docs/receipt.png", ".receipt.png")
	assert.True(t, errors.Is(err, handlers.ErrInvalid))

	require.NoError(t, s.DeleteFile(ctx, nil, "docs/receipt.png"))
	assert.True(t, errors.Is(s.DeleteFile(ctx, nil, "docs/receipt.png"), handlers.ErrNotFound))
}

func TestService_MutationsNeedEdit(t *testing.T) {
	root := t.TempDir()
	storage, err := NewStorage(root)
	require.NoError(t, err)

	viewOnly := securitytest.CheckerFunc(func(obj, action string) bool { return action == "view" })
	s, err := NewService(storage, viewOnly)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Folders(ctx, nil, "", false)
	assert.NoError(t, err)

	_, err = s.CreateFolder(ctx, nil, "", "new")
	assert.True(t, errors.Is(err, handlers.ErrUnauthorized))
	assert.True(t, errors.Is(s.DeleteFile(ctx, nil, "x"), handlers.ErrUnauthorized))
}

// Package storage persists uploaded picture files on disk.
package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/Forgos-ynov/Vault-API/pkg/config"
	"github.com/google/uuid"
)

// PictureStore writes uploads under the configured directory. Stored names
// are derived from a fresh uuid plus the original extension, so uploads
// never collide and client-supplied names never reach the filesystem.
type PictureStore struct {
	dir        string
	publicPath string
}

// NewPictureStore creates the store and its directory.
func NewPictureStore(cfg *config.Upload) (*PictureStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	return &PictureStore{dir: cfg.Dir, publicPath: cfg.PublicPath}, nil
}

// PublicPath is the base path clients use to fetch stored files.
func (s *PictureStore) PublicPath() string {
	return s.publicPath
}

// Store writes the upload to disk and returns the stored relative path.
func (s *PictureStore) Store(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close() //nolint:errcheck

	storedName := uuid.New().String() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return "", err
	}
	defer dst.Close() //nolint:errcheck

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return storedName, nil
}

// Package storage is the object storage collaborator for product image
// uploads. Filenames are randomized so concurrent uploads of the same
// original name can not collide.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store saves binary objects and resolves public URLs for them
type Store interface {
	Save(filename string, r io.Reader) (string, error)
}

// GenerateFilename builds a collision-safe filename from the original:
// upload timestamp, a random suffix and the original extension.
func GenerateFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// LocalStore writes objects to a directory served under a public base URL
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the directory if needed and returns the store
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the object and returns its public URL
func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", err
	}
	return s.baseURL + "/" + filepath.Base(filename), nil
}

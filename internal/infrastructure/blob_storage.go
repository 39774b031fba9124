package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalBlobStorage implements repositories.BlobStore on the local
// filesystem. Every write gets a fresh uuid filename, so concurrent
// uploads never contend on a path.
type LocalBlobStorage struct {
	root string
}

func NewLocalBlobStorage(root string) *LocalBlobStorage {
	return &LocalBlobStorage{root: root}
}

func (s *LocalBlobStorage) Store(content []byte) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create blob root: %w", err)
	}
	path := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return path, nil
}

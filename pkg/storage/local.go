package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStore defines the contract for uploaded-image storage. Files live in
// per-owner folders; the key is chosen by the caller and must not contain
// path separators.
type FileStore interface {
	// Save writes the file under <root>/<folder>/<key> and returns the
	// absolute path of the stored file.
	Save(ctx context.Context, folder, key string, r io.Reader) (string, error)
	// Remove deletes a previously stored file. Removing a missing file is
	// not an error.
	Remove(ctx context.Context, folder, key string) error
}

type diskStore struct {
	root string
}

// NewDiskStore creates a FileStore rooted at the given directory.
func NewDiskStore(root string) FileStore {
	return &diskStore{root: root}
}

func (s *diskStore) Save(ctx context.Context, folder, key string, r io.Reader) (string, error) {
	if filepath.Base(key) != key || key == "." || key == "" {
		return "", fmt.Errorf("invalid storage key %q", key)
	}

	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	path := filepath.Join(dir, key)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	return path, nil
}

func (s *diskStore) Remove(ctx context.Context, folder, key string) error {
	if filepath.Base(key) != key || key == "." || key == "" {
		return fmt.Errorf("invalid storage key %q", key)
	}

	err := os.Remove(filepath.Join(s.root, folder, key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

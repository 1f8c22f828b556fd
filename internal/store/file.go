package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"guitarhub-storefront/internal/domain"
)

// File is a KV that keeps one JSON file per key under a directory. It is
// the default session backend, standing in for the browser's local storage.
type File struct {
	dir string
}

// NewFile creates the directory if needed and returns a file-backed KV.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get returns the stored value or domain.ErrNotFound.
func (f *File) Get(_ context.Context, key string) (string, error) {
	raw, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Set writes the value for key.
func (f *File) Set(_ context.Context, key, value string) error {
	return os.WriteFile(f.path(key), []byte(value), 0o600)
}

// Delete removes the key's file; deleting an absent key is not an error.
func (f *File) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

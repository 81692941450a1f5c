// Package file provides a filesystem-backed DocumentStore.
// Documents are stored as individual .svg files in a configured directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/svgtint/pkg/domain"
)

const ext = ".svg"

// Store implements ports.DocumentStore using the local filesystem.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".svgtint/documents".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".svgtint", "documents")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(id string) string {
	return filepath.Join(s.BasePath, id+ext)
}

// Save persists the document to a file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it
// to the destination.
func (s *Store) Save(ctx context.Context, id, doc string) error {
	if id == "" {
		return fmt.Errorf("document ID cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure document directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+id+"-*"+ext)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Remove the temp file on any failure path; after a successful rename
	// the remove is a harmless no-op on a missing path.
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.WriteString(doc); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(id)); err != nil {
		return fmt.Errorf("failed to move document into place: %w", err)
	}

	return nil
}

// Load retrieves the document from disk.
func (s *Store) Load(ctx context.Context, id string) (string, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrDocumentNotFound
		}
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

// Delete removes the document file. Deleting a missing document is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// List returns IDs derived from the .svg files in the base directory.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ext) || strings.HasPrefix(name, "tmp-") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ext))
	}
	return ids, nil
}

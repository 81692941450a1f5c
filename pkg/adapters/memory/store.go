// Package memory provides an in-memory DocumentStore, primarily for tests
// and single-process servers.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/svgtint/pkg/domain"
)

// Store implements ports.DocumentStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]string),
	}
}

// Save persists the document in memory.
func (s *Store) Save(ctx context.Context, id, doc string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = doc
	return nil
}

// Load retrieves the document from memory.
func (s *Store) Load(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[id]
	if !ok {
		return "", domain.ErrDocumentNotFound
	}
	return doc, nil
}

// Delete removes the document.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the stored document IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

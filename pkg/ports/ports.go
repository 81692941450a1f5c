package ports

import (
	"context"

	"github.com/aretw0/svgtint/pkg/domain"
)

// Extractor parses a free-text instruction into a fully populated spec.
// Implementations must be total: unrecognized input degrades to defaults,
// never to an error.
type Extractor interface {
	Extract(instruction string) domain.GradientSpec
}

// Rewriter produces a new document with the gradient from spec embedded and
// the target shape's fill bound to it. Implementations must not mutate the
// input and must be safe for concurrent use across unrelated calls.
type Rewriter interface {
	Rewrite(spec domain.GradientSpec, doc string) (string, error)
}

// DocumentStore defines the interface for persisting document bodies.
// Documents are opaque text; stores never inspect or transform them.
type DocumentStore interface {
	// Save persists the document body under the given ID, replacing any
	// previous body.
	Save(ctx context.Context, id, doc string) error

	// Load retrieves the document body for the given ID.
	// Returns domain.ErrDocumentNotFound if the ID does not exist.
	Load(ctx context.Context, id string) (string, error)

	// Delete removes the document for the given ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored documents.
	List(ctx context.Context) ([]string, error)
}

package domain

import (
	"errors"
	"fmt"
)

// ErrDocumentNotFound is returned when a document ID cannot be found in a store.
var ErrDocumentNotFound = errors.New("document not found")

// InvalidColorError reports a stop color that does not match the required
// #RRGGBB form.
type InvalidColorError struct {
	Field string // Spec field name ("start_color" or "end_color")
	Value string // The value that failed validation
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("field %q: invalid color format (got %q, want #RRGGBB)", e.Field, e.Value)
}

package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventExtract EventType = "extract"
	EventRewrite EventType = "rewrite"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ExtractEvent fires after an instruction has been parsed into a spec.
type ExtractEvent struct {
	EventBase
	Instruction string       `json:"instruction"`
	Spec        GradientSpec `json:"spec"`
}

// RewriteEvent fires after a document rewrite attempt.
type RewriteEvent struct {
	EventBase
	Spec        GradientSpec  `json:"spec"`
	Mode        string        `json:"mode"` // "pattern" or "structural"
	InputBytes  int           `json:"input_bytes"`
	OutputBytes int           `json:"output_bytes"`
	Duration    time.Duration `json:"duration"`
	IsError     bool          `json:"is_error,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnExtract func(context.Context, *ExtractEvent)
	OnRewrite func(context.Context, *RewriteEvent)
}

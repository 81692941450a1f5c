package svgtint

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/svgtint/pkg/domain"
	"github.com/aretw0/svgtint/pkg/extract"
	"github.com/aretw0/svgtint/pkg/ports"
	"github.com/aretw0/svgtint/pkg/rewrite"
)

// Engine is the high-level entry point for the svgtint library.
// It composes the extractor and a rewriter and provides a simplified API
// for consumers, with optional logging and lifecycle hooks.
//
// The engine holds no per-request state: every call receives its own spec
// and document copy, so one Engine is safe to share across goroutines.
type Engine struct {
	extractor ports.Extractor
	rewriter  ports.Rewriter
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithExtractor injects a custom instruction extractor.
func WithExtractor(ex ports.Extractor) Option {
	return func(e *Engine) {
		e.extractor = ex
	}
}

// WithRewriter injects a custom document rewriter.
func WithRewriter(rw ports.Rewriter) Option {
	return func(e *Engine) {
		e.rewriter = rw
	}
}

// WithStructuralRewriter selects the strict XML-based rewriter instead of
// the default pattern rewriter.
func WithStructuralRewriter() Option {
	return WithRewriter(rewrite.NewStructural())
}

// New initializes a new svgtint Engine. By default it uses the keyword
// extractor and the compatibility pattern rewriter.
func New(opts ...Option) *Engine {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.extractor == nil {
		eng.extractor = extract.New()
	}
	if eng.rewriter == nil {
		eng.rewriter = rewrite.NewPattern()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return eng
}

// Extract parses an instruction into a fully populated GradientSpec.
// It never fails; unrecognized input degrades to defaults.
func (e *Engine) Extract(ctx context.Context, instruction string) domain.GradientSpec {
	spec := e.extractor.Extract(instruction)

	e.logger.Debug("instruction parsed",
		"kind", spec.Kind,
		"direction", spec.Direction,
		"start_color", spec.StartColor,
		"end_color", spec.EndColor,
		"target_shape", spec.TargetShape,
	)

	if e.hooks.OnExtract != nil {
		e.hooks.OnExtract(ctx, &domain.ExtractEvent{
			EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventExtract},
			Instruction: instruction,
			Spec:        spec,
		})
	}

	return spec
}

// Rewrite produces a new document with the gradient from spec embedded and
// the target shape's fill bound to it. The input document is never mutated.
func (e *Engine) Rewrite(ctx context.Context, spec domain.GradientSpec, doc string) (string, error) {
	start := time.Now()
	out, err := e.rewriter.Rewrite(spec, doc)
	elapsed := time.Since(start)

	if err != nil {
		e.logger.Error("rewrite failed", "err", err, "mode", e.Mode())
	} else {
		e.logger.Debug("document rewritten",
			"mode", e.Mode(),
			"input_bytes", len(doc),
			"output_bytes", len(out),
		)
	}

	if e.hooks.OnRewrite != nil {
		e.hooks.OnRewrite(ctx, &domain.RewriteEvent{
			EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventRewrite},
			Spec:        spec,
			Mode:        e.Mode(),
			InputBytes:  len(doc),
			OutputBytes: len(out),
			Duration:    elapsed,
			IsError:     err != nil,
		})
	}

	return out, err
}

// Apply runs the full pipeline: extract a spec from the instruction, then
// rewrite the document with it. The spec is returned alongside the new
// document so callers can log or display what was applied.
func (e *Engine) Apply(ctx context.Context, instruction, doc string) (string, domain.GradientSpec, error) {
	spec := e.Extract(ctx, instruction)
	out, err := e.Rewrite(ctx, spec, doc)
	return out, spec, err
}

// Mode reports the active rewriter variant ("pattern", "structural", or
// "custom" for injected implementations).
func (e *Engine) Mode() string {
	if m, ok := e.rewriter.(interface{ Mode() string }); ok {
		return m.Mode()
	}
	return "custom"
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/svgtint/internal/presentation/tui"
)

// ApplyOptions contains all the configuration for the apply command.
type ApplyOptions struct {
	Instruction string
	InputPath   string // empty or "-" reads Stdin
	OutputPath  string // empty writes Stdout
	Mode        string // "pattern" or "structural"
	LogLevel    string
	Pretty      bool
	Debug       bool
}

// RunApply handles the apply command logic: extract a spec from the
// instruction and rewrite the input document with it.
func RunApply(ctx context.Context, opts ApplyOptions) error {
	logger := createLogger(opts.Debug, opts.LogLevel)

	engine, err := createEngine(opts.Mode, logger)
	if err != nil {
		return err
	}

	doc, err := readDocument(opts.InputPath)
	if err != nil {
		return err
	}

	out, spec, err := engine.Apply(ctx, opts.Instruction, doc)
	if err != nil {
		return fmt.Errorf("apply failed: %w", err)
	}

	if err := writeOutput(opts.OutputPath, out); err != nil {
		return err
	}

	// The summary goes to Stderr so the document on Stdout stays pipeable.
	if opts.Pretty && stdoutIsTTY() {
		render := tui.NewRenderer()
		summary, rerr := render(tui.SpecMarkdown(spec))
		if rerr != nil {
			logger.Warn("failed to render summary", "error", rerr)
			return nil
		}
		fmt.Fprint(os.Stderr, summary)
	}

	return nil
}

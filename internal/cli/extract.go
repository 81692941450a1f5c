package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExtractOptions contains all the configuration for the extract command.
type ExtractOptions struct {
	Instruction string
	Format      string // "yaml" (default) or "json"
	LogLevel    string
	Debug       bool
}

// RunExtract handles the extract command logic: parse the instruction and
// print the resulting spec without touching any document.
func RunExtract(ctx context.Context, opts ExtractOptions) error {
	logger := createLogger(opts.Debug, opts.LogLevel)

	engine, err := createEngine("", logger)
	if err != nil {
		return err
	}

	spec := engine.Extract(ctx, opts.Instruction)

	switch opts.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(spec)
	case "yaml", "":
		data, err := yaml.Marshal(spec)
		if err != nil {
			return fmt.Errorf("error encoding spec: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", opts.Format)
	}
}

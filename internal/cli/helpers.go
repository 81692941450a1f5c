package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/svgtint"
	"github.com/aretw0/svgtint/internal/config"
	"github.com/aretw0/svgtint/internal/logging"
	"golang.org/x/term"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout document output).
func createLogger(debug bool, level string) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	if level == "" {
		return logging.NewNop()
	}
	return logging.New(parseLevel(level))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// createEngine initializes an engine with standard CLI conventions.
func createEngine(mode string, logger *slog.Logger) (*svgtint.Engine, error) {
	opts := []svgtint.Option{svgtint.WithLogger(logger)}

	switch mode {
	case config.ModePattern, "":
	case config.ModeStructural:
		opts = append(opts, svgtint.WithStructuralRewriter())
	default:
		return nil, fmt.Errorf("unknown rewriter mode %q", mode)
	}

	return svgtint.New(opts...), nil
}

// readDocument reads the input document from a file, or from Stdin when
// path is empty or "-".
func readDocument(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes the result to a file, or to Stdout when path is empty.
func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Print(content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// stdoutIsTTY reports whether Stdout is an interactive terminal.
// Pretty output is suppressed when piping into another program.
func stdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/svgtint/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// It uses a dark theme by default, but could be configurable.
func NewRenderer() func(string) (string, error) {
	// Initialize renderer with standard dark style
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// SpecMarkdown formats a gradient spec as a markdown summary suitable
// for the glamour renderer.
func SpecMarkdown(spec domain.GradientSpec) string {
	var b strings.Builder
	b.WriteString("## Gradient\n\n")
	fmt.Fprintf(&b, "- **Kind**: %s\n", spec.Kind)
	if spec.Kind == domain.KindLinear {
		fmt.Fprintf(&b, "- **Direction**: %s\n", spec.Direction)
	}
	fmt.Fprintf(&b, "- **Colors**: `%s` → `%s`\n", spec.StartColor, spec.EndColor)
	fmt.Fprintf(&b, "- **Target shape**: `%s`\n", spec.TargetShape)
	return b.String()
}

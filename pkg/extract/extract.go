// Package extract parses free-text styling instructions into a GradientSpec.
//
// Parsing is deliberately narrow: fixed-order keyword and pattern matching,
// no natural-language understanding. Extraction is total — anything not
// recognized degrades to the spec defaults, so the returned spec is always
// fully populated.
package extract

import (
	"regexp"
	"strings"

	"github.com/aretw0/svgtint/pkg/domain"
)

// colorToken matches a 6-hex-digit color token prefixed by '#'.
var colorToken = regexp.MustCompile(`#[0-9a-fA-F]{6}`)

// Extractor implements ports.Extractor with the fixed keyword rules.
// The zero value is ready to use.
type Extractor struct{}

// New returns a ready-to-use extractor.
func New() *Extractor { return &Extractor{} }

// Extract satisfies ports.Extractor.
func (*Extractor) Extract(instruction string) domain.GradientSpec {
	return Extract(instruction)
}

// Extract scans an instruction and returns a fully populated GradientSpec.
//
// Rules, in order:
//  1. Colors: the first two #RRGGBB tokens become start and end color, in
//     order of appearance. A single token is discarded entirely — both
//     defaults are kept unless two or more tokens are present. This is a
//     compatibility guarantee, not an oversight.
//  2. Kind: the substring "radial" selects a radial gradient; linear is the
//     default and needs no keyword.
//  3. Direction: "vertical" is checked before "horizontal", so it wins when
//     both appear. Neither keyword keeps the vertical default.
//  4. Shape: "rectangle"/"rect", then "circle", then "ellipse"; first match
//     wins, default rect.
//
// Keyword checks are case-insensitive. Extract never fails.
func Extract(instruction string) domain.GradientSpec {
	spec := domain.DefaultSpec()

	colors := colorToken.FindAllString(instruction, -1)
	if len(colors) >= 2 {
		spec.StartColor = colors[0]
		spec.EndColor = colors[1]
	}

	lower := strings.ToLower(instruction)

	if strings.Contains(lower, "radial") {
		spec.Kind = domain.KindRadial
	}

	if strings.Contains(lower, "vertical") {
		spec.Direction = domain.DirectionVertical
	} else if strings.Contains(lower, "horizontal") {
		spec.Direction = domain.DirectionHorizontal
	}

	switch {
	case strings.Contains(lower, "rectangle"), strings.Contains(lower, "rect"):
		spec.TargetShape = domain.ShapeRect
	case strings.Contains(lower, "circle"):
		spec.TargetShape = domain.ShapeCircle
	case strings.Contains(lower, "ellipse"):
		spec.TargetShape = domain.ShapeEllipse
	}

	return spec
}

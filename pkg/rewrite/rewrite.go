/*
Package rewrite embeds a generated gradient definition into an SVG document
and binds the target shape's fill to it.

Two implementations are provided:

  - PatternRewriter edits the document as plain text. It is the default and
    the compatibility reference: it never fails on malformed markup and
    degrades to appending or no-op edits.
  - StructuralRewriter parses the document as XML and rebuilds it. It matches
    tag names exactly and preserves unrelated defs content at the cost of
    normalized serialization. It is opt-in.

Both are pure: they take a spec and a document string and return a new
document string, holding no state between calls.
*/
package rewrite

import (
	"fmt"

	"github.com/aretw0/svgtint/pkg/domain"
)

// directionAttrs computes the geometry attributes for the gradient element.
// Linear gradients get an axis derived from the direction (any unknown value
// falls back to vertical); radial gradients get a fixed centered geometry
// regardless of direction.
func directionAttrs(spec domain.GradientSpec) string {
	if spec.Kind == domain.KindRadial {
		return `cx="50%" cy="50%" r="50%"`
	}
	if spec.Direction == domain.DirectionHorizontal {
		return `x1="0%" y1="0%" x2="100%" y2="0%"`
	}
	return `x1="0%" y1="0%" x2="0%" y2="100%"`
}

// gradientTag returns the gradient element name for the spec kind.
// Unknown kinds render as linear, mirroring the extractor's default.
func gradientTag(spec domain.GradientSpec) string {
	if spec.Kind == domain.KindRadial {
		return "radialGradient"
	}
	return "linearGradient"
}

// defsBlock builds the definitions container: one gradient element with the
// constant identifier and two stops, start color at 0% and end color at 100%,
// both fully opaque. The indentation matches the block's placement directly
// under the document root.
func defsBlock(spec domain.GradientSpec) string {
	tag := gradientTag(spec)
	return fmt.Sprintf(`    <defs>
        <%[1]s id=%[2]q %[3]s>
            <stop offset="0%%" style="stop-color:%[4]s; stop-opacity:1" />
            <stop offset="100%%" style="stop-color:%[5]s; stop-opacity:1" />
        </%[1]s>
    </defs>`, tag, domain.GradientID, directionAttrs(spec), spec.StartColor, spec.EndColor)
}

// fillRef is the attribute value binding a shape to the generated gradient.
func fillRef() string {
	return fmt.Sprintf("url(#%s)", domain.GradientID)
}

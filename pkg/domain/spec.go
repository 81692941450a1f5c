package domain

import "regexp"

// Kind identifies the gradient geometry.
type Kind string

const (
	KindLinear Kind = "linear"
	KindRadial Kind = "radial"
)

// Direction identifies the axis of a linear gradient.
// It is populated but ignored when Kind == KindRadial.
type Direction string

const (
	DirectionVertical   Direction = "vertical"
	DirectionHorizontal Direction = "horizontal"
)

// Shape identifies the markup element type whose fill attribute is bound
// to the generated gradient.
type Shape string

const (
	ShapeRect    Shape = "rect"
	ShapeCircle  Shape = "circle"
	ShapeEllipse Shape = "ellipse"
)

// GradientID is the identifier assigned to the generated gradient element.
/// A document holds exactly one named gradient slot: rewriting an already
// rewritten document replaces the previous gradient rather than adding one.
const GradientID = "grad1"

// Default stop colors, used whenever an instruction carries fewer than two
// color tokens.
const (
	DefaultStartColor = "#ff0000"
	DefaultEndColor   = "#0000ff"
)

// hexColor matches a full 6-hex-digit color string, e.g. "#1a2b3c".
var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// GradientSpec is the structured description of a two-stop gradient and its
// target shape. It is created once per request, passed by value, and never
// mutated after creation. All fields have defined defaults, so a spec
// produced by the extractor is always fully populated.
type GradientSpec struct {
	Kind        Kind      `json:"kind" yaml:"kind" mapstructure:"kind"`
	Direction   Direction `json:"direction" yaml:"direction" mapstructure:"direction"`
	StartColor  string    `json:"start_color" yaml:"start_color" mapstructure:"start_color"`
	EndColor    string    `json:"end_color" yaml:"end_color" mapstructure:"end_color"`
	TargetShape Shape     `json:"target_shape" yaml:"target_shape" mapstructure:"target_shape"`
}

// DefaultSpec returns a spec populated with every default: a vertical linear
// gradient from red to blue, targeting a rect.
func DefaultSpec() GradientSpec {
	return GradientSpec{
		Kind:        KindLinear,
		Direction:   DirectionVertical,
		StartColor:  DefaultStartColor,
		EndColor:    DefaultEndColor,
		TargetShape: ShapeRect,
	}
}

// Validate checks that both stop colors are well-formed 6-hex-digit colors.
// Specs produced by the extractor always pass; hand-built specs may not.
// Returns an *InvalidColorError naming the offending field.
func (s GradientSpec) Validate() error {
	if !hexColor.MatchString(s.StartColor) {
		return &InvalidColorError{Field: "start_color", Value: s.StartColor}
	}
	if !hexColor.MatchString(s.EndColor) {
		return &InvalidColorError{Field: "end_color", Value: s.EndColor}
	}
	return nil
}

// Fields returns the spec as a flat string mapping, suitable for logging
// and plain-text serialization.
func (s GradientSpec) Fields() map[string]string {
	return map[string]string{
		"kind":         string(s.Kind),
		"direction":    string(s.Direction),
		"start_color":  s.StartColor,
		"end_color":    s.EndColor,
		"target_shape": string(s.TargetShape),
	}
}

package extract_test

import (
	"testing"

	"github.com/aretw0/svgtint/pkg/domain"
	"github.com/aretw0/svgtint/pkg/extract"
	"github.com/stretchr/testify/assert"
)

func TestExtract_Defaults(t *testing.T) {
	spec := extract.Extract("make it pretty")
	assert.Equal(t, domain.DefaultSpec(), spec)
}

func TestExtract_Colors(t *testing.T) {
	tests := []struct {
		name        string
		instruction string
		wantStart   string
		wantEnd     string
	}{
		{
			name:        "two colors in order of appearance",
			instruction: "gradient from #00ff00 to #ff00ff please",
			wantStart:   "#00ff00",
			wantEnd:     "#ff00ff",
		},
		{
			name:        "order beats role keywords",
			instruction: "end with #111111 and start with #222222",
			wantStart:   "#111111",
			wantEnd:     "#222222",
		},
		{
			name:        "more than two colors uses first two",
			instruction: "#aaaaaa #bbbbbb #cccccc",
			wantStart:   "#aaaaaa",
			wantEnd:     "#bbbbbb",
		},
		{
			name:        "single color is discarded, defaults kept",
			instruction: "make the rect #00ff00",
			wantStart:   domain.DefaultStartColor,
			wantEnd:     domain.DefaultEndColor,
		},
		{
			name:        "no colors",
			instruction: "vertical gradient on the rect",
			wantStart:   domain.DefaultStartColor,
			wantEnd:     domain.DefaultEndColor,
		},
		{
			name:        "malformed tokens are not counted",
			instruction: "#ff00 to #zzzzzz but #123abc and #ABCdef are fine",
			wantStart:   "#123abc",
			wantEnd:     "#ABCdef",
		},
		{
			name:        "3-digit shorthand is not a token",
			instruction: "#f00 to #00f",
			wantStart:   domain.DefaultStartColor,
			wantEnd:     domain.DefaultEndColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := extract.Extract(tt.instruction)
			assert.Equal(t, tt.wantStart, spec.StartColor)
			assert.Equal(t, tt.wantEnd, spec.EndColor)
			assert.NoError(t, spec.Validate(), "extracted specs must always validate")
		})
	}
}

func TestExtract_Kind(t *testing.T) {
	assert.Equal(t, domain.KindRadial, extract.Extract("a RADIAL glow").Kind)
	assert.Equal(t, domain.KindLinear, extract.Extract("a linear fade").Kind)
	assert.Equal(t, domain.KindLinear, extract.Extract("no keyword at all").Kind)
}

func TestExtract_Direction(t *testing.T) {
	tests := []struct {
		instruction string
		want        domain.Direction
	}{
		{"vertical fade", domain.DirectionVertical},
		{"HORIZONTAL sweep", domain.DirectionHorizontal},
		{"horizontal then vertical", domain.DirectionVertical}, // vertical check runs first
		{"no direction given", domain.DirectionVertical},
	}

	for _, tt := range tests {
		t.Run(tt.instruction, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.Extract(tt.instruction).Direction)
		})
	}
}

func TestExtract_TargetShape(t *testing.T) {
	tests := []struct {
		instruction string
		want        domain.Shape
	}{
		{"paint the rectangle", domain.ShapeRect},
		{"paint the rect", domain.ShapeRect},
		{"paint the circle", domain.ShapeCircle},
		{"paint the ellipse", domain.ShapeEllipse},
		{"paint the triangle", domain.ShapeRect}, // default
		{"the rect next to the circle", domain.ShapeRect},
		{"a Circle inside an ellipse", domain.ShapeCircle},
	}

	for _, tt := range tests {
		t.Run(tt.instruction, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.Extract(tt.instruction).TargetShape)
		})
	}
}

func TestExtract_FullInstruction(t *testing.T) {
	spec := extract.Extract("Change the red rectangle to have a vertical gradient from #ff0000 to #0000ff.")

	assert.Equal(t, domain.GradientSpec{
		Kind:        domain.KindLinear,
		Direction:   domain.DirectionVertical,
		StartColor:  "#ff0000",
		EndColor:    "#0000ff",
		TargetShape: domain.ShapeRect,
	}, spec)
}

func TestExtractor_Interface(t *testing.T) {
	ex := extract.New()
	spec := ex.Extract("radial circle from #010203 to #040506")

	assert.Equal(t, domain.KindRadial, spec.Kind)
	assert.Equal(t, domain.ShapeCircle, spec.TargetShape)
	assert.Equal(t, "#010203", spec.StartColor)
}

package domain_test

import (
	"testing"

	"github.com/aretw0/svgtint/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSpec(t *testing.T) {
	spec := domain.DefaultSpec()

	assert.Equal(t, domain.KindLinear, spec.Kind)
	assert.Equal(t, domain.DirectionVertical, spec.Direction)
	assert.Equal(t, "#ff0000", spec.StartColor)
	assert.Equal(t, "#0000ff", spec.EndColor)
	assert.Equal(t, domain.ShapeRect, spec.TargetShape)

	assert.NoError(t, spec.Validate(), "a default spec must always be valid")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantField  string
	}{
		{"valid lowercase", "#ff0000", "#0000ff", ""},
		{"valid mixed case", "#AbCdEf", "#012345", ""},
		{"missing hash", "ff0000", "#0000ff", "start_color"},
		{"too short", "#ff000", "#0000ff", "start_color"},
		{"too long", "#ff0000", "#0000ff0", "end_color"},
		{"non-hex digits", "#ff0000", "#gg0000", "end_color"},
		{"empty", "", "#0000ff", "start_color"},
		{"named color", "#ff0000", "blue", "end_color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := domain.DefaultSpec()
			spec.StartColor = tt.start
			spec.EndColor = tt.end

			err := spec.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var colorErr *domain.InvalidColorError
			require.ErrorAs(t, err, &colorErr)
			assert.Equal(t, tt.wantField, colorErr.Field)
		})
	}
}

func TestFields(t *testing.T) {
	spec := domain.GradientSpec{
		Kind:        domain.KindRadial,
		Direction:   domain.DirectionHorizontal,
		StartColor:  "#112233",
		EndColor:    "#445566",
		TargetShape: domain.ShapeCircle,
	}

	fields := spec.Fields()
	assert.Equal(t, map[string]string{
		"kind":         "radial",
		"direction":    "horizontal",
		"start_color":  "#112233",
		"end_color":    "#445566",
		"target_shape": "circle",
	}, fields)
}

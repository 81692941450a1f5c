package svgtint_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/svgtint"
	"github.com/aretw0/svgtint/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inputDoc = `<svg width="300" height="300" xmlns="http://www.w3.org/2000/svg">
 <rect x="50" y="50" width="200" height="100" fill="red"/>
</svg>`

func TestEngine_Apply(t *testing.T) {
	eng := svgtint.New()
	ctx := context.Background()

	out, spec, err := eng.Apply(ctx,
		"Change the red rectangle to have a vertical gradient from #ff0000 to #0000ff.", inputDoc)
	require.NoError(t, err)

	assert.Equal(t, domain.KindLinear, spec.Kind)
	assert.Equal(t, domain.DirectionVertical, spec.Direction)
	assert.Equal(t, domain.ShapeRect, spec.TargetShape)

	assert.Contains(t, out, `<linearGradient id="grad1" x1="0%" y1="0%" x2="0%" y2="100%">`)
	assert.Contains(t, out, `fill="url(#grad1)"`)
	assert.Equal(t, 1, strings.Count(out, "<defs>"))
}

func TestEngine_ApplyIsDeterministic(t *testing.T) {
	eng := svgtint.New()
	ctx := context.Background()
	instruction := "radial glow on the circle from #101010 to #202020"
	doc := `<svg><circle r="4"/></svg>`

	first, _, err := eng.Apply(ctx, instruction, doc)
	require.NoError(t, err)
	second, _, err := eng.Apply(ctx, instruction, doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_Hooks(t *testing.T) {
	var extracts, rewrites int
	var lastMode string

	eng := svgtint.New(svgtint.WithLifecycleHooks(domain.LifecycleHooks{
		OnExtract: func(_ context.Context, e *domain.ExtractEvent) {
			extracts++
			assert.Equal(t, domain.EventExtract, e.Type)
		},
		OnRewrite: func(_ context.Context, e *domain.RewriteEvent) {
			rewrites++
			lastMode = e.Mode
			assert.False(t, e.IsError)
			assert.Greater(t, e.OutputBytes, e.InputBytes)
		},
	}))

	_, _, err := eng.Apply(context.Background(), "rect gradient", inputDoc)
	require.NoError(t, err)

	assert.Equal(t, 1, extracts)
	assert.Equal(t, 1, rewrites)
	assert.Equal(t, "pattern", lastMode)
}

func TestEngine_StructuralOption(t *testing.T) {
	eng := svgtint.New(svgtint.WithStructuralRewriter())
	assert.Equal(t, "structural", eng.Mode())

	// Structural mode rejects unparseable documents instead of degrading.
	_, _, err := eng.Apply(context.Background(), "rect gradient", "<svg><rect></svg>")
	assert.Error(t, err)
}

func TestEngine_RewriteValidatesManualSpec(t *testing.T) {
	eng := svgtint.New()
	spec := domain.DefaultSpec()
	spec.StartColor = "red"

	_, err := eng.Rewrite(context.Background(), spec, inputDoc)

	var colorErr *domain.InvalidColorError
	require.ErrorAs(t, err, &colorErr)
}

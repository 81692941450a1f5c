package rewrite_test

import (
	"strings"
	"testing"

	"github.com/aretw0/svgtint/pkg/domain"
	"github.com/aretw0/svgtint/pkg/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructural_LinearVertical(t *testing.T) {
	rw := rewrite.NewStructural()
	out := mustRewrite(t, rw, domain.DefaultSpec(), simpleDoc)

	assert.Equal(t, 1, strings.Count(out, "<defs>"))
	assert.Contains(t, out, `<linearGradient id="grad1" x1="0%" y1="0%" x2="0%" y2="100%">`)
	assert.Contains(t, out, `fill="url(#grad1)"`)
	assert.NotContains(t, out, `fill="red"`)
	assert.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
}

func TestStructural_ExactTagMatching(t *testing.T) {
	// Unlike the pattern rewriter, "rect" does not match an element whose
	// name merely starts with "rect".
	doc := `<svg><rectangleX fill="red"/><rect fill="green"/></svg>`

	out := mustRewrite(t, rewrite.NewStructural(), domain.DefaultSpec(), doc)

	assert.Contains(t, out, `<rectangleX fill="red"/>`)
	assert.Contains(t, out, `<rect fill="url(#grad1)"/>`)
}

func TestStructural_InjectsFillWhenAbsent(t *testing.T) {
	spec := domain.DefaultSpec()
	spec.TargetShape = domain.ShapeCircle

	out := mustRewrite(t, rewrite.NewStructural(), spec, `<svg><circle cx="5" cy="5" r="4"/></svg>`)
	assert.Contains(t, out, `<circle cx="5" cy="5" r="4" fill="url(#grad1)"/>`)
}

func TestStructural_ReplacesOnlyFirstDefs(t *testing.T) {
	doc := `<svg><defs><filter id="blur"/></defs><defs><mask id="m"/></defs><rect fill="red"/></svg>`

	out := mustRewrite(t, rewrite.NewStructural(), domain.DefaultSpec(), doc)

	// First container replaced, second left alone.
	assert.NotContains(t, out, "blur")
	assert.Contains(t, out, `<mask id="m"/>`)
	assert.Contains(t, out, `id="grad1"`)
}

func TestStructural_Idempotence(t *testing.T) {
	rw := rewrite.NewStructural()
	spec := domain.DefaultSpec()

	once := mustRewrite(t, rw, spec, simpleDoc)
	twice := mustRewrite(t, rw, spec, once)

	assert.Equal(t, 1, strings.Count(twice, "<defs>"))
	assert.Equal(t, 1, strings.Count(twice, "<linearGradient"))
	assert.Equal(t, 1, strings.Count(twice, `fill="url(#grad1)"`))
}

func TestStructural_PreservesUnrelatedContent(t *testing.T) {
	doc := `<?xml version="1.0"?>
<!-- hand drawn -->
<svg>
  <text>5 &lt; 6 &amp; 7 &gt; 2</text>
  <rect fill="red"/>
</svg>`

	out := mustRewrite(t, rewrite.NewStructural(), domain.DefaultSpec(), doc)

	assert.Contains(t, out, "<!-- hand drawn -->")
	assert.Contains(t, out, "<?xml version=\"1.0\"?>")
	assert.Contains(t, out, "5 &lt; 6 &amp; 7 &gt; 2")
}

func TestStructural_MalformedDocument(t *testing.T) {
	_, err := rewrite.NewStructural().Rewrite(domain.DefaultSpec(), "<svg><rect></svg>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse document")
}

func TestStructural_MissingShapeStillInsertsDefs(t *testing.T) {
	out := mustRewrite(t, rewrite.NewStructural(), domain.DefaultSpec(), `<svg><ellipse rx="4"/></svg>`)

	assert.Contains(t, out, `id="grad1"`)
	assert.Contains(t, out, `<ellipse rx="4"/>`)
	assert.NotContains(t, out, "url(#grad1)")
}

func TestStructural_InvalidSpecColors(t *testing.T) {
	spec := domain.DefaultSpec()
	spec.StartColor = "#ff00"

	_, err := rewrite.NewStructural().Rewrite(spec, simpleDoc)

	var colorErr *domain.InvalidColorError
	require.ErrorAs(t, err, &colorErr)
	assert.Equal(t, "start_color", colorErr.Field)
}

func TestStructural_Mode(t *testing.T) {
	assert.Equal(t, "structural", rewrite.NewStructural().Mode())
}

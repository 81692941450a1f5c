package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/svgtint"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleExtract(t *testing.T) {
	s := NewServer(svgtint.New(), "test")

	spec, err := s.handleExtract(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"instruction": "radial gradient from #11aa22 to #33bb44 on the circle",
	})
	require.NoError(t, err)

	assert.Equal(t, "radial", string(spec.Kind))
	assert.Equal(t, "#11aa22", spec.StartColor)
	assert.Equal(t, "#33bb44", spec.EndColor)
	assert.Equal(t, "circle", string(spec.TargetShape))
}

func TestHandleApply(t *testing.T) {
	s := NewServer(svgtint.New(), "test")

	doc := `<svg xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10"/></svg>`
	resp, err := s.handleApply(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"instruction": "gradient on the rect",
		"document":    doc,
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Document, "<defs>")
	assert.Contains(t, resp.Document, `fill="url(#grad1)"`)
	assert.Equal(t, "rect", string(resp.Spec.TargetShape))
}

func TestHandleApply_BadArgs(t *testing.T) {
	s := NewServer(svgtint.New(), "test")

	_, err := s.handleApply(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"instruction": 42,
	})
	assert.Error(t, err)
}

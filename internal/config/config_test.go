package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/svgtint/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "svgtint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
mode: structural
listen: ":9090"
redis: "localhost:6379"
log_level: debug
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.ModeStructural, cfg.Mode)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "localhost:6379", cfg.Redis)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "listen: \":3000\"\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Listen)
	assert.Equal(t, config.ModePattern, cfg.Mode)
}

func TestLoad_RejectsUnknownMode(t *testing.T) {
	path := writeConfig(t, "mode: regex\n")

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "unknown rewriter mode")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "mode: [unclosed\n")

	_, err := config.Load(path)
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := `
window:
  width: 1920
  height: 1080
  title: demo
  target_fps: 60
scene:
  path: assets/scenes/other.json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int32(1920), cfg.Window.Width)
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, int32(60), cfg.Window.TargetFPS)
	assert.Equal(t, "assets/scenes/other.json", cfg.Scene.Path)

	// Untouched sections keep their defaults.
	assert.Equal(t, int32(1024), cfg.Shadow.Resolution)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: -5\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

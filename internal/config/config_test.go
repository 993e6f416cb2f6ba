//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/pythagoras/internal/triangle"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, triangle.DefaultState(), cfg.InitialState())
	assert.InDelta(t, 400.0, cfg.Viewport().Width, 1e-12)
	assert.InDelta(t, 300.0, cfg.Viewport().Height, 1e-12)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
canvas:
  width: 640
sliders:
  c:
    min: 0.5
    max: 30
    step: 0.5
initial:
  a: 6
  b: 8
  c: 10
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.Equal(t, 300, cfg.Canvas.Height)
	assert.Equal(t, Slider{Min: 0.5, Max: 30, Step: 0.5}, cfg.Slider(triangle.SideC))
	assert.Equal(t, Slider{Min: 1, Max: 20, Step: 0.1}, cfg.Slider(triangle.SideA))
	assert.Equal(t, triangle.State{A: 6, B: 8, C: 10}, cfg.InitialState())
}

func TestLoad_PresetWinsOverInitialSides(t *testing.T) {
	path := writeConfig(t, "initial:\n  a: 1\n  preset: \"2\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, triangle.State{A: 5, B: 12, C: 13}, cfg.InitialState())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "max below min", content: "sliders:\n  a:\n    min: 10\n    max: 5\n    step: 1\n"},
		{name: "zero step", content: "sliders:\n  b:\n    min: 1\n    max: 5\n    step: 0\n"},
		{name: "negative side", content: "initial:\n  c: -2\n"},
		{name: "unknown preset", content: "initial:\n  preset: \"9\"\n"},
		{name: "supersample too high", content: "export:\n  supersample: 64\n"},
		{name: "zero canvas", content: "canvas:\n  height: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "canvas: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_TooLarge(t *testing.T) {
	_, err := Load(writeConfig(t, "# "+strings.Repeat("x", maxConfigSize)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file too large")
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandTilde("~/.config/pythagoras/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "pythagoras", "config.yaml"), got)

	got, err = expandTilde("/etc/x.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/x.yaml", got)
}

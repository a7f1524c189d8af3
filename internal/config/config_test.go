package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "m", defaults.GrabTask)
	assert.Equal(t, "esc", defaults.Cancel)
	assert.Equal(t, "space", defaults.ViewTask)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultColumns(), cfg.DefaultColumns)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, "default", cfg.Theme.Preset)
	assert.Equal(t, models.Palette, cfg.ColumnPalette())
}

func TestLoadFile_PartialOverrides(t *testing.T) {
	path := writeConfig(t, `
database_path: /tmp/board.db
log_level: debug
palette: [red, Green]
default_columns:
  - title: Backlog
    color: gray
  - title: Shipped
    color: teal
    terminal: true
key_mappings:
  quit: "x"
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/board.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []models.Color{models.ColorRed, models.ColorGreen}, cfg.ColumnPalette())
	require.Len(t, cfg.DefaultColumns, 2)
	assert.True(t, cfg.DefaultColumns[1].Terminal)

	// unset keys fall back to defaults
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "h", cfg.KeyMappings.PrevColumn)

	assert.Equal(t, "#123456", cfg.Theme.Accent)
	assert.Equal(t, MonochromeTheme().Normal, cfg.Theme.Normal)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "key_mappings: [unterminated"},
		{"unknown palette color", "palette: [chartreuse]"},
		{"two terminal columns", "default_columns:\n  - {title: A, terminal: true}\n  - {title: B, terminal: true}"},
		{"empty column title", "default_columns:\n  - {title: \"\"}"},
		{"bad column color", "default_columns:\n  - {title: A, color: beige}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestPath_Precedence(t *testing.T) {
	t.Setenv("TABLERO_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "tablero", "config.yaml"), path)

	t.Setenv("TABLERO_CONFIG", "/explicit.yaml")
	path, err = Path()
	require.NoError(t, err)
	assert.Equal(t, "/explicit.yaml", path)
}

func TestLoad_UsesEnvPath(t *testing.T) {
	t.Setenv("TABLERO_CONFIG", writeConfig(t, "log_level: warn"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

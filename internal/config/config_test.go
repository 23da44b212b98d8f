package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
ui:
  window:
    width: 1024
    height: 768
    title: Test Window
  board:
    cell_size: 64
logging:
  level: debug
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	// Reset global state
	cfg = nil
	v = nil

	err = Init(configFile)
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 1024, c.UI.Window.Width)
	assert.Equal(t, 768, c.UI.Window.Height)
	assert.Equal(t, "Test Window", c.UI.Window.Title)
	assert.Equal(t, 64, c.UI.Board.CellSize)
	assert.Equal(t, "debug", c.Logging.Level)

	// Untouched keys keep their defaults
	assert.Equal(t, 26, c.UI.History.EntryHeight)
	assert.Equal(t, "console", c.Logging.Format)
}

func TestInitWithDefaults(t *testing.T) {
	cfg = nil
	v = nil

	err := Init("")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 640, c.UI.Window.Width)
	assert.Equal(t, 420, c.UI.Window.Height)
	assert.Equal(t, "Tic-Tac-Toe", c.UI.Window.Title)
	assert.Equal(t, 96, c.UI.Board.CellSize)
	assert.Equal(t, [3]int{200, 50, 50}, c.Colors.MarkX)
	assert.Equal(t, [3]int{50, 100, 200}, c.Colors.MarkO)
	assert.Equal(t, "info", c.Logging.Level)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg = nil
		v = nil
		require.NoError(t, Init(""))
		return Get()
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window width", func(c *Config) { c.UI.Window.Width = 0 }},
		{"negative cell size", func(c *Config) { c.UI.Board.CellSize = -1 }},
		{"zero entry height", func(c *Config) { c.UI.History.EntryHeight = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "chatty" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"rgb out of range", func(c *Config) { c.Colors.MarkX = [3]int{300, 0, 0} }},
		{"negative margin", func(c *Config) { c.UI.History.Margin = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			require.NoError(t, Validate(c))

			tt.mutate(c)
			assert.Error(t, Validate(c))
		})
	}
}

func TestInitRejectsInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configFile, []byte("ui:\n  board:\n    cell_size: -3\n"), 0644)
	require.NoError(t, err)

	cfg = nil
	v = nil

	err = Init(configFile)
	assert.Error(t, err)
}

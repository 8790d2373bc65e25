package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "list", cfg.DefaultView)
	assert.True(t, cfg.SeedSamples)
	assert.Contains(t, cfg.DataDir, "taskdeck")
	assert.Contains(t, cfg.LogFile, "taskdeck.log")
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
data_dir = "/tmp/deck"
default_view = "board"
seed_samples = false
log_file = "/tmp/deck/deck.log"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/deck", cfg.DataDir)
	assert.Equal(t, "board", cfg.DefaultView)
	assert.False(t, cfg.SeedSamples)
	assert.Equal(t, "/tmp/deck/deck.log", cfg.LogFile)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `default_view = "board"`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "board", cfg.DefaultView)
	assert.True(t, cfg.SeedSamples)
	assert.Equal(t, Default().DataDir, cfg.DataDir)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, `data_dir = [broken`)

	cfg, err := Load(path)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadInvalidDefaultView(t *testing.T) {
	path := writeConfig(t, `default_view = "kanban"`)

	cfg, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_view")
	assert.Nil(t, cfg)
}

func TestLoadExpandsHome(t *testing.T) {
	path := writeConfig(t, `
data_dir = "~/deckdata"
log_file = "~/deckdata/deck.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "deckdata"), cfg.DataDir)
	assert.Equal(t, filepath.Join(home, "deckdata", "deck.log"), cfg.LogFile)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"~/x", filepath.Join(home, "x")},
		{"~", home},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, expandHome(tt.in), "input %q", tt.in)
	}
}

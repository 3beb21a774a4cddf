package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.HistoryPath)
	assert.Equal(t, "~/notes", cfg.NotesDir)
	assert.Equal(t, "Browser History", cfg.Folder)
	assert.Equal(t, "YYYY-MM-DD", cfg.FileNameFormat)
	assert.Empty(t, cfg.FromDate)
	assert.False(t, cfg.SyncOnStartup)
	assert.Equal(t, int64(0), cfg.AutoSyncIntervalMs)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadValidYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
history_path: "/Users/noy/Library/Application Support/BraveSoftware/Brave-Browser/Default/History"
folder: "Web Journal"
from_date: "2025-01-01"
auto_sync_interval_ms: 300000
log_level: "debug"
`
	err := os.WriteFile(cfgPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	// Overridden values
	assert.Contains(t, cfg.HistoryPath, "Brave-Browser")
	assert.Equal(t, "Web Journal", cfg.Folder)
	assert.Equal(t, "2025-01-01", cfg.FromDate)
	assert.Equal(t, int64(300000), cfg.AutoSyncIntervalMs)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Non-overridden values remain defaults
	assert.Equal(t, "YYYY-MM-DD", cfg.FileNameFormat)
	assert.Equal(t, "~/notes", cfg.NotesDir)
	assert.False(t, cfg.SyncOnStartup)
}

func TestLoadInvalidYAMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	err := os.WriteFile(cfgPath, []byte(":::not valid yaml{{{"), 0644)
	require.NoError(t, err)

	_, err = Load(cfgPath)
	assert.Error(t, err)
}

func TestLoadNonExistentFileReturnsError(t *testing.T) {
	_, err := Load("/tmp/nonexistent_path_12345/config.yaml")
	assert.Error(t, err)
}

func TestLoadOrCreateCreatesDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "deep", "config.yaml")

	cfg, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "Browser History", cfg.Folder)
	assert.Equal(t, "YYYY-MM-DD", cfg.FileNameFormat)

	// File should now exist on disk and be loadable again
	_, statErr := os.Stat(cfgPath)
	assert.NoError(t, statErr)

	cfg2, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.Folder, cfg2.Folder)
}

func TestLoadOrCreateLoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
folder: "History Notes"
`
	err := os.WriteFile(cfgPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "History Notes", cfg.Folder)
	// Other fields remain defaults
	assert.Equal(t, "YYYY-MM-DD", cfg.FileNameFormat)
}

func TestSaveRoundtripsWatermark(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	cfg, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)
	assert.Empty(t, cfg.FromDate)

	cfg.FromDate = "2025-01-02"
	require.NoError(t, Save(cfgPath, cfg))

	reloaded, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", reloaded.FromDate)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/notes")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes"), expanded)

	plain, err := ExpandPath("/var/notes")
	require.NoError(t, err)
	assert.Equal(t, "/var/notes", plain)
}

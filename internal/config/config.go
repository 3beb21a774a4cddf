// Package config persists histnote's sync state: where the history
// database and the notes vault live, how note files are named, and the
// incremental-sync watermark.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/histnote/config.yaml"

// Config is the persisted sync state. FromDate is a watermark, not a fixed
// setting: it advances to today's date after every completed sync, so the
// next sync only walks newly elapsed days. Editing it backward forces a
// re-sync of the covered range.
type Config struct {
	HistoryPath        string `yaml:"history_path"` // "" = auto-detect for this platform
	NotesDir           string `yaml:"notes_dir"`    // vault root directory
	Folder             string `yaml:"folder"`       // vault-relative folder for notes
	FileNameFormat     string `yaml:"file_name_format"`
	FromDate           string `yaml:"from_date"` // watermark, "YYYY-MM-DD" or ""
	SyncOnStartup      bool   `yaml:"sync_on_startup"`
	AutoSyncIntervalMs int64  `yaml:"auto_sync_interval_ms"` // 0 = disabled
	LogLevel           string `yaml:"log_level"`
	PrettyLog          bool   `yaml:"pretty_log"`
}

// Load reads a YAML config file at path and merges it with defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes the config back to path, creating the directory structure
// when needed. This is how watermark advances are persisted.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path, writing defaults on
// first run. Returns the resolved path alongside the config so callers can
// save watermark advances back to the same file.
func LoadOrCreate() (*Config, string, error) {
	path, err := ExpandPath(DefaultConfigPath)
	if err != nil {
		return nil, "", err
	}
	cfg, err := LoadOrCreateAt(path)
	return cfg, path, err
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return Load(path)
}

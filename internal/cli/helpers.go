package cli

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
	"time"

	"github.com/runnerr0/histnote/internal/browser"
	"github.com/runnerr0/histnote/internal/config"
	"github.com/runnerr0/histnote/internal/history"
	"github.com/runnerr0/histnote/internal/logger"
	"github.com/runnerr0/histnote/internal/notesync"
	"github.com/runnerr0/histnote/internal/vault"
)

// resolveConfig loads the config named by --config, or the default config
// file, creating it with defaults on first run. Returns the path the
// config was loaded from so watermark advances can be saved back.
func resolveConfig(globals *GlobalFlags) (*config.Config, string, error) {
	if globals != nil && globals.Config != "" {
		cfg, err := config.LoadOrCreateAt(globals.Config)
		return cfg, globals.Config, err
	}
	return config.LoadOrCreate()
}

func newLogger(cfg *config.Config, globals *GlobalFlags) logger.Logger {
	level := cfg.LogLevel
	if globals != nil && globals.Verbose {
		level = "debug"
	}
	return logger.New(level, cfg.PrettyLog)
}

// currentPlatform maps the running OS onto the detector's platform enum.
func currentPlatform() browser.Platform {
	switch runtime.GOOS {
	case "darwin":
		return browser.Mac
	case "windows":
		return browser.Windows
	default:
		return browser.Linux
	}
}

func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// resolveHistoryPath picks the history database to read. A configured path
// wins and its browser kind is detected from the path string; otherwise
// the platform-default locations are probed, Chrome-family first, then the
// default Firefox profile.
func resolveHistoryPath(cfg *config.Config) (string, browser.Kind, error) {
	if cfg.HistoryPath != "" {
		path, err := config.ExpandPath(cfg.HistoryPath)
		if err != nil {
			return "", browser.Unknown, err
		}
		return path, browser.Detect(path), nil
	}

	platform := currentPlatform()
	username := currentUsername()

	for _, kind := range []browser.Kind{browser.Chrome, browser.Brave} {
		path := browser.DefaultHistoryPath(kind, platform, username)
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, kind, nil
		}
	}

	root := browser.DefaultHistoryPath(browser.Firefox, platform, username)
	for _, profile := range browser.Profiles(root) {
		if profile.Default {
			return profile.DBPath, browser.Firefox, nil
		}
	}

	return "", browser.Unknown, fmt.Errorf("no history database found; set history_path in the config")
}

// newSynchronizer wires a Synchronizer from the loaded config. The reader
// is opened fresh on every cycle; the watermark commit writes the config
// back to the file it came from.
func newSynchronizer(cfg *config.Config, cfgPath string, log logger.Logger) (*notesync.Synchronizer, error) {
	historyPath, kind, err := resolveHistoryPath(cfg)
	if err != nil {
		return nil, err
	}

	notesDir, err := config.ExpandPath(cfg.NotesDir)
	if err != nil {
		return nil, err
	}

	return notesync.New(notesync.Options{
		OpenReader: func() (*history.Reader, error) {
			return history.Open(historyPath, kind)
		},
		Vault:    vault.NewDir(notesDir),
		Notifier: notesync.NotifierFunc(func(msg string) { fmt.Println(msg) }),
		Logger:   log,
		Commit: func(watermark string) error {
			cfg.FromDate = watermark
			return config.Save(cfgPath, cfg)
		},
		Folder:         cfg.Folder,
		FileNameFormat: cfg.FileNameFormat,
		FromDate:       cfg.FromDate,
	}), nil
}

// syncInterval resolves the watch interval from the flag override or the
// configured auto-sync interval. Sub-second configs are rounded up, the
// cron scheduler does not tick faster than once per second.
func syncInterval(flagValue string, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("invalid interval %q: %w", flagValue, err)
		}
		return d, nil
	}
	if cfg.AutoSyncIntervalMs <= 0 {
		return 0, fmt.Errorf("auto-sync is disabled; set auto_sync_interval_ms or pass --interval")
	}
	d := time.Duration(cfg.AutoSyncIntervalMs) * time.Millisecond
	if d < time.Second {
		d = time.Second
	}
	return d, nil
}

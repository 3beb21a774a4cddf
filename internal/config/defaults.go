package config

// DefaultConfig returns a Config populated with all default values.
// Auto-sync and sync-on-startup are opt-in.
func DefaultConfig() *Config {
	return &Config{
		HistoryPath:        "",
		NotesDir:           "~/notes",
		Folder:             "Browser History",
		FileNameFormat:     "YYYY-MM-DD",
		FromDate:           "",
		SyncOnStartup:      false,
		AutoSyncIntervalMs: 0,
		LogLevel:           "info",
		PrettyLog:          true,
	}
}

package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	Verbose bool   `long:"verbose" description:"Enable debug logging"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// SyncCommand syncs daily notes from the watermark date up to today.
type SyncCommand struct {
	From string `long:"from" description:"Override the start date (YYYY-MM-DD); ignores the saved watermark"`

	globals *GlobalFlags
	version string
}

// TodayCommand syncs only today's note and print its path.
type TodayCommand struct {
	globals *GlobalFlags
	version string
}

// CheckCommand opens the history database and report what is in it.
type CheckCommand struct {
	globals *GlobalFlags
	version string
}

// BrowsersCommand shows default history locations and Firefox profiles.
type BrowsersCommand struct {
	globals *GlobalFlags
	version string
}

// WatchCommand runs the auto-sync daemon until interrupted.
type WatchCommand struct {
	Interval string `long:"interval" description:"Override the sync interval (e.g. 5m, 1h)"`

	globals *GlobalFlags
	version string
}

package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Sync     *SyncCommand
	Today    *TodayCommand
	Check    *CheckCommand
	Browsers *BrowsersCommand
	Watch    *WatchCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "histnote"
	parser.LongDescription = "Materialize your browser history as daily markdown notes in a notes vault."

	cmds := &commands{
		Sync:     &SyncCommand{globals: &globals, version: version},
		Today:    &TodayCommand{globals: &globals, version: version},
		Check:    &CheckCommand{globals: &globals, version: version},
		Browsers: &BrowsersCommand{globals: &globals, version: version},
		Watch:    &WatchCommand{globals: &globals, version: version},
	}

	parser.AddCommand("sync", "Sync history notes", "Sync daily history notes from the watermark date up to today.", cmds.Sync)
	parser.AddCommand("today", "Sync today's note", "Sync today's history note and print its path.", cmds.Today)
	parser.AddCommand("check", "Check database connection", "Open the history database and report record count and oldest visit.", cmds.Check)
	parser.AddCommand("browsers", "List browser history locations", "Show default history database locations and Firefox profiles on this machine.", cmds.Browsers)
	parser.AddCommand("watch", "Run the auto-sync daemon", "Sync on an interval until interrupted, with optional sync on startup.", cmds.Watch)

	return parser, &globals, cmds
}

// Run is the main entry point for the histnote CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("histnote %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}

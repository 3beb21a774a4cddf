package cli

import (
	"fmt"
	"os"

	"github.com/runnerr0/histnote/internal/browser"
)

// Execute implements the go-flags Commander interface for BrowsersCommand.
// It shows where each supported browser keeps its history on this machine
// and which of those locations actually exist.
func (c *BrowsersCommand) Execute(args []string) error {
	platform := currentPlatform()
	username := currentUsername()

	fmt.Println("Default history locations")
	fmt.Println("=========================")

	for _, kind := range []browser.Kind{browser.Chrome, browser.Brave, browser.Firefox} {
		path := browser.DefaultHistoryPath(kind, platform, username)
		if path == "" {
			continue
		}
		fmt.Printf("%-8s %s%s\n", kind, path, existsMarker(path))
	}

	root := browser.DefaultHistoryPath(browser.Firefox, platform, username)
	profiles := browser.Profiles(root)
	if len(profiles) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Firefox profiles:")
	for _, p := range profiles {
		marker := ""
		if p.Default {
			marker = " (default)"
		}
		fmt.Printf("  %s%s\n", p.Name, marker)
	}

	return nil
}

func existsMarker(path string) string {
	if _, err := os.Stat(path); err == nil {
		return "  [found]"
	}
	return ""
}

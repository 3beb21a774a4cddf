package browser

import "strings"

// Kind identifies the browser family a history database belongs to. The
// family decides the on-disk schema and the timestamp epoch.
type Kind string

const (
	Chrome  Kind = "chrome"
	Firefox Kind = "firefox"
	Brave   Kind = "brave"
	Unknown Kind = "unknown"
)

// Detect classifies a history file path by case-insensitive substring
// matching. Brave markers are checked before the generic Chrome markers:
// Brave's installation paths also contain Chrome-family substrings, so the
// more specific vendor must win.
func Detect(path string) Kind {
	p := strings.ToLower(path)

	if strings.Contains(p, "brave") {
		return Brave
	}

	if strings.Contains(p, "chrome") ||
		strings.Contains(p, "google-chrome") ||
		strings.Contains(p, "chromium") {
		return Chrome
	}

	if strings.Contains(p, "firefox") || strings.Contains(p, "places.sqlite") {
		return Firefox
	}

	return Unknown
}

// Schema-wise Unknown and Brave read like Chrome; Firefox is the only
// family with its own layout.
func (k Kind) ChromeCompatible() bool {
	return k != Firefox
}

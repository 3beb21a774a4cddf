package browser

import (
	"os"
	"path/filepath"
	"strings"
)

// Profile is one Firefox-style profile directory that contains a history
// database.
type Profile struct {
	Name    string
	DBPath  string
	Default bool
}

// Profiles enumerates profile directories under a Firefox profiles root and
// keeps the ones holding a places.sqlite database. The default profile is
// the one whose directory name carries a ".default" marker; absent a naming
// match the first profile found is reported as default. Fails soft: any
// filesystem error yields an empty list.
func Profiles(root string) []Profile {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var profiles []Profile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dbPath := filepath.Join(root, entry.Name(), "places.sqlite")
		if _, err := os.Stat(dbPath); err != nil {
			continue
		}

		profiles = append(profiles, Profile{
			Name:    entry.Name(),
			DBPath:  dbPath,
			Default: strings.Contains(strings.ToLower(entry.Name()), ".default"),
		})
	}

	if len(profiles) > 0 && !hasDefault(profiles) {
		profiles[0].Default = true
	}

	return profiles
}

func hasDefault(profiles []Profile) bool {
	for _, p := range profiles {
		if p.Default {
			return true
		}
	}
	return false
}

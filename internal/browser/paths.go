package browser

// Platform identifies the host operating system for default-path lookup.
type Platform string

const (
	Mac     Platform = "mac"
	Windows Platform = "windows"
	Linux   Platform = "linux"
)

// DefaultHistoryPath returns the conventional history database location for
// a browser family on a platform. Pure lookup, no filesystem probing;
// returns "" for combinations it does not know. For Firefox the returned
// path is the profiles root, see Profiles for picking the actual database.
func DefaultHistoryPath(kind Kind, platform Platform, username string) string {
	switch kind {
	case Brave:
		switch platform {
		case Mac:
			return "/Users/" + username + "/Library/Application Support/BraveSoftware/Brave-Browser/Default/History"
		case Windows:
			return `C:\Users\` + username + `\AppData\Local\BraveSoftware\Brave-Browser\User Data\Default\History`
		case Linux:
			return "/home/" + username + "/.config/BraveSoftware/Brave-Browser/Default/History"
		}
	case Firefox:
		switch platform {
		case Mac:
			return "/Users/" + username + "/Library/Application Support/Firefox/Profiles"
		case Windows:
			return `C:\Users\` + username + `\AppData\Roaming\Mozilla\Firefox\Profiles`
		case Linux:
			return "/home/" + username + "/.mozilla/firefox"
		}
	case Chrome, Unknown:
		switch platform {
		case Mac:
			return "/Users/" + username + "/Library/Application Support/Google/Chrome/Default/History"
		case Windows:
			return `C:\Users\` + username + `\AppData\Local\Google\Chrome\User Data\Default\History`
		case Linux:
			return "/home/" + username + "/.config/google-chrome/Default/History"
		}
	}
	return ""
}

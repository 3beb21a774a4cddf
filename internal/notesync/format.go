package notesync

import (
	"fmt"
	"strings"
	"time"

	"github.com/runnerr0/histnote/internal/history"
)

// FormatNote renders visit records as a markdown bullet list, one line per
// record in the reader's own order. Lines are joined without a trailing
// newline so regenerating an unchanged day is byte-identical.
func FormatNote(records []history.VisitRecord) string {
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = fmt.Sprintf("- %s [%s](%s)", rec.VisitTime.Format("15:04"), rec.Title, rec.URL)
	}
	return strings.Join(lines, "\n")
}

// FormatFileName expands a moment-style file name template for a date.
// Supported tokens: YYYY, MM, DD, HH, mm; text inside square brackets is
// copied verbatim. Unrecognized characters pass through unchanged, so a
// template like "[Browser History] YYYY-MM-DD" works as users expect.
func FormatFileName(date time.Time, template string) string {
	var b strings.Builder
	runes := []rune(template)

	for i := 0; i < len(runes); {
		switch {
		case runes[i] == '[':
			end := i + 1
			for end < len(runes) && runes[end] != ']' {
				end++
			}
			b.WriteString(string(runes[i+1 : end]))
			if end < len(runes) {
				end++ // consume closing bracket
			}
			i = end
		case hasToken(runes, i, "YYYY"):
			b.WriteString(fmt.Sprintf("%04d", date.Year()))
			i += 4
		case hasToken(runes, i, "MM"):
			b.WriteString(fmt.Sprintf("%02d", int(date.Month())))
			i += 2
		case hasToken(runes, i, "DD"):
			b.WriteString(fmt.Sprintf("%02d", date.Day()))
			i += 2
		case hasToken(runes, i, "HH"):
			b.WriteString(fmt.Sprintf("%02d", date.Hour()))
			i += 2
		case hasToken(runes, i, "mm"):
			b.WriteString(fmt.Sprintf("%02d", date.Minute()))
			i += 2
		default:
			b.WriteRune(runes[i])
			i++
		}
	}

	return b.String()
}

func hasToken(runes []rune, i int, token string) bool {
	if i+len(token) > len(runes) {
		return false
	}
	return string(runes[i:i+len(token)]) == token
}

// formatNumber groups an int64 with comma separators for user-facing
// record counts.
func formatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
		result.WriteString(",")
	}
	for i := remainder; i < len(s); i += 3 {
		if i > remainder {
			result.WriteString(",")
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

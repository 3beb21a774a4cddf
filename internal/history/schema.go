package history

import (
	"strings"

	"github.com/runnerr0/histnote/internal/browser"
)

// schema encapsulates the on-disk layout of one browser family. Selected
// once at Open; callers of Reader never see the difference.
type schema interface {
	// probeTable is checked against sqlite_master at open time so a
	// misdetected file fails fast with an OpenError instead of a late
	// QueryError.
	probeTable() string
	epoch() browser.EpochKind
	visitQuery(opts QueryOptions) (string, []interface{})
	countQuery() string
}

func schemaFor(kind browser.Kind) schema {
	if kind == browser.Firefox {
		return firefoxSchema{}
	}
	// Brave and Unknown read like Chrome.
	return chromeSchema{}
}

// chromeSchema reads the urls table with its embedded last-visit column,
// stored as microseconds since 1601. Rows with the zero sentinel are
// broken data and always excluded.
type chromeSchema struct{}

func (chromeSchema) probeTable() string       { return "urls" }
func (chromeSchema) epoch() browser.EpochKind { return browser.MicrosecondsSince1601 }

func (s chromeSchema) visitQuery(opts QueryOptions) (string, []interface{}) {
	clauses := []string{"last_visit_time != 0"}
	var args []interface{}

	if opts.From != nil {
		clauses = append(clauses, "last_visit_time >= ?")
		args = append(args, browser.FromUnixMillis(opts.From.UnixMilli(), s.epoch()))
	}
	if opts.To != nil {
		clauses = append(clauses, "last_visit_time < ?")
		args = append(args, browser.FromUnixMillis(opts.To.UnixMilli(), s.epoch()))
	}

	query := `
		SELECT IFNULL(title, ''), url, last_visit_time
		FROM urls
		WHERE ` + strings.Join(clauses, " AND ") + `
		ORDER BY last_visit_time ` + direction(opts)

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	return query, args
}

func (chromeSchema) countQuery() string {
	return "SELECT COUNT(*) FROM urls WHERE last_visit_time != 0"
}

// firefoxSchema joins the visits table to the places table, visit dates
// stored as microseconds since 1970.
type firefoxSchema struct{}

func (firefoxSchema) probeTable() string       { return "moz_historyvisits" }
func (firefoxSchema) epoch() browser.EpochKind { return browser.MicrosecondsSince1970 }

func (s firefoxSchema) visitQuery(opts QueryOptions) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if opts.From != nil {
		clauses = append(clauses, "v.visit_date >= ?")
		args = append(args, browser.FromUnixMillis(opts.From.UnixMilli(), s.epoch()))
	}
	if opts.To != nil {
		clauses = append(clauses, "v.visit_date < ?")
		args = append(args, browser.FromUnixMillis(opts.To.UnixMilli(), s.epoch()))
	}

	query := `
		SELECT IFNULL(p.title, ''), p.url, v.visit_date
		FROM moz_historyvisits v
		JOIN moz_places p ON p.id = v.place_id`

	if len(clauses) > 0 {
		query += "\n\t\tWHERE " + strings.Join(clauses, " AND ")
	}
	query += "\n\t\tORDER BY v.visit_date " + direction(opts)

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	return query, args
}

func (firefoxSchema) countQuery() string {
	return "SELECT COUNT(*) FROM moz_historyvisits"
}

func direction(opts QueryOptions) string {
	if opts.Ascending {
		return "ASC"
	}
	return "DESC"
}

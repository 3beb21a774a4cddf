// Package history reads visit records out of a browser's local history
// database. The database is foreign and opened strictly read-only; schema
// differences between browser families stay behind the Reader.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runnerr0/histnote/internal/browser"
)

// VisitRecord is one normalized browsing-history entry. VisitTime is always
// derived from the raw stored value, never the raw value itself.
type VisitRecord struct {
	Title     string
	URL       string
	VisitTime time.Time
}

// QueryOptions bound and order a visit query. From is inclusive and To
// exclusive on the normalized visit time; Limit <= 0 means unbounded;
// ordering is by recency, descending unless Ascending is set.
type QueryOptions struct {
	From      *time.Time
	To        *time.Time
	Limit     int
	Ascending bool
}

// Reader is a handle on one opened history database.
type Reader struct {
	db     *sql.DB
	kind   browser.Kind
	schema schema
}

// Open opens the history database at path read-only and verifies it holds
// the table expected for the detected browser kind. The file is never
// written: the DSN forces read-only immutable access, which also tolerates
// the browser holding its own lock on the file.
func Open(path string, kind browser.Kind) (*Reader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	dsn := "file:" + path + "?mode=ro&immutable=1"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	s := schemaFor(kind)

	var probe int
	err = db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		s.probeTable(),
	).Scan(&probe)
	if err != nil {
		db.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if probe == 0 {
		db.Close()
		return nil, &OpenError{Path: path, Err: fmt.Errorf("no %s table, not a %s history database", s.probeTable(), kind)}
	}

	return &Reader{db: db, kind: kind, schema: s}, nil
}

// Kind reports the browser family this reader was opened for.
func (r *Reader) Kind() browser.Kind { return r.kind }

// Query returns visit records matching opts, ordered by visit recency.
func (r *Reader) Query(ctx context.Context, opts QueryOptions) ([]VisitRecord, error) {
	query, args := r.schema.visitQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &QueryError{Kind: string(r.kind), Err: err}
	}
	defer rows.Close()

	var records []VisitRecord
	for rows.Next() {
		var rec VisitRecord
		var raw int64
		if err := rows.Scan(&rec.Title, &rec.URL, &raw); err != nil {
			return nil, &QueryError{Kind: string(r.kind), Err: fmt.Errorf("scan visit: %w", err)}
		}
		rec.VisitTime = time.UnixMilli(browser.ToUnixMillis(raw, r.schema.epoch()))
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Kind: string(r.kind), Err: err}
	}

	return records, nil
}

// Count returns the total visit rows across all time.
func (r *Reader) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, r.schema.countQuery()).Scan(&count); err != nil {
		return 0, &QueryError{Kind: string(r.kind), Err: err}
	}
	return count, nil
}

// Close releases the underlying database handle.
func (r *Reader) Close() error {
	return r.db.Close()
}

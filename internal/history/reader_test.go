package history

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/histnote/internal/browser"
)

// chromeFixture writes a minimal Chrome-style history database and returns
// its path. Visits are given as (title, url, visit time).
func chromeFixture(t *testing.T, visits ...VisitRecord) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "History")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE urls (
			id              INTEGER PRIMARY KEY,
			url             TEXT,
			title           TEXT,
			visit_count     INTEGER DEFAULT 0,
			typed_count     INTEGER DEFAULT 0,
			last_visit_time INTEGER,
			hidden          INTEGER DEFAULT 0
		)
	`)
	require.NoError(t, err)

	for _, v := range visits {
		raw := browser.FromUnixMillis(v.VisitTime.UnixMilli(), browser.MicrosecondsSince1601)
		_, err = db.Exec(
			"INSERT INTO urls (url, title, last_visit_time) VALUES (?, ?, ?)",
			v.URL, v.Title, raw,
		)
		require.NoError(t, err)
	}

	return path
}

// chromeFixtureRaw inserts a row with an unconverted last_visit_time, used
// for sentinel testing.
func chromeFixtureRaw(t *testing.T, path string, title, url string, raw int64) {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(
		"INSERT INTO urls (url, title, last_visit_time) VALUES (?, ?, ?)",
		url, title, raw,
	)
	require.NoError(t, err)
}

// firefoxFixture writes a minimal places.sqlite with the visits table
// joined to the places table.
func firefoxFixture(t *testing.T, visits ...VisitRecord) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.sqlite")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE moz_places (
			id    INTEGER PRIMARY KEY,
			url   TEXT,
			title TEXT
		);
		CREATE TABLE moz_historyvisits (
			id         INTEGER PRIMARY KEY,
			place_id   INTEGER,
			visit_date INTEGER
		);
	`)
	require.NoError(t, err)

	for i, v := range visits {
		_, err = db.Exec("INSERT INTO moz_places (id, url, title) VALUES (?, ?, ?)", i+1, v.URL, v.Title)
		require.NoError(t, err)

		raw := browser.FromUnixMillis(v.VisitTime.UnixMilli(), browser.MicrosecondsSince1970)
		_, err = db.Exec("INSERT INTO moz_historyvisits (place_id, visit_date) VALUES (?, ?)", i+1, raw)
		require.NoError(t, err)
	}

	return path
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "History"), browser.Chrome)
	require.Error(t, err)

	var openErr *OpenError
	assert.True(t, errors.As(err, &openErr))
}

func TestOpen_WrongSchema(t *testing.T) {
	// A Firefox database opened as Chrome must fail at open, not at query.
	path := firefoxFixture(t, VisitRecord{Title: "A", URL: "https://a", VisitTime: at(10, 0)})

	_, err := Open(path, browser.Chrome)
	require.Error(t, err)

	var openErr *OpenError
	assert.True(t, errors.As(err, &openErr))
}

func TestQuery_ChromeRoundtrip(t *testing.T) {
	path := chromeFixture(t,
		VisitRecord{Title: "A", URL: "https://a", VisitTime: at(10, 0)},
		VisitRecord{Title: "B", URL: "https://b", VisitTime: at(14, 30)},
	)

	r, err := Open(path, browser.Chrome)
	require.NoError(t, err)
	defer r.Close()

	records, err := r.Query(context.Background(), QueryOptions{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Descending recency by default.
	assert.Equal(t, "B", records[0].Title)
	assert.Equal(t, "https://b", records[0].URL)
	assert.Equal(t, at(14, 30), records[0].VisitTime.UTC())
	assert.Equal(t, "A", records[1].Title)
}

func TestQuery_FirefoxRoundtrip(t *testing.T) {
	path := firefoxFixture(t,
		VisitRecord{Title: "A", URL: "https://a", VisitTime: at(10, 0)},
		VisitRecord{Title: "B", URL: "https://b", VisitTime: at(14, 30)},
	)

	r, err := Open(path, browser.Firefox)
	require.NoError(t, err)
	defer r.Close()

	records, err := r.Query(context.Background(), QueryOptions{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "B", records[0].Title)
	assert.Equal(t, at(14, 30), records[0].VisitTime.UTC())
}

func TestQuery_DayBoundaries(t *testing.T) {
	dayStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	nextDay := dayStart.AddDate(0, 0, 1)

	path := chromeFixture(t,
		VisitRecord{Title: "at-start", URL: "https://start", VisitTime: dayStart},
		VisitRecord{Title: "last-ms", URL: "https://last", VisitTime: nextDay.Add(-time.Millisecond)},
		VisitRecord{Title: "next-day", URL: "https://next", VisitTime: nextDay},
	)

	r, err := Open(path, browser.Chrome)
	require.NoError(t, err)
	defer r.Close()

	records, err := r.Query(context.Background(), QueryOptions{From: &dayStart, To: &nextDay})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Inclusive lower bound, exclusive upper bound.
	assert.Equal(t, "last-ms", records[0].Title)
	assert.Equal(t, "at-start", records[1].Title)
}

func TestQuery_ExcludesZeroSentinel(t *testing.T) {
	path := chromeFixture(t, VisitRecord{Title: "ok", URL: "https://ok", VisitTime: at(12, 0)})
	chromeFixtureRaw(t, path, "broken", "https://broken", 0)

	r, err := Open(path, browser.Chrome)
	require.NoError(t, err)
	defer r.Close()

	records, err := r.Query(context.Background(), QueryOptions{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ok", records[0].Title)
}

func TestQuery_AscendingAndLimit(t *testing.T) {
	path := chromeFixture(t,
		VisitRecord{Title: "one", URL: "https://1", VisitTime: at(9, 0)},
		VisitRecord{Title: "two", URL: "https://2", VisitTime: at(11, 0)},
		VisitRecord{Title: "three", URL: "https://3", VisitTime: at(13, 0)},
	)

	r, err := Open(path, browser.Chrome)
	require.NoError(t, err)
	defer r.Close()

	records, err := r.Query(context.Background(), QueryOptions{Ascending: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "one", records[0].Title)
}

func TestCount(t *testing.T) {
	path := chromeFixture(t,
		VisitRecord{Title: "A", URL: "https://a", VisitTime: at(10, 0)},
		VisitRecord{Title: "B", URL: "https://b", VisitTime: at(14, 30)},
	)
	chromeFixtureRaw(t, path, "broken", "https://broken", 0)

	r, err := Open(path, browser.Chrome)
	require.NoError(t, err)
	defer r.Close()

	count, err := r.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCount_Firefox(t *testing.T) {
	path := firefoxFixture(t,
		VisitRecord{Title: "A", URL: "https://a", VisitTime: at(10, 0)},
	)

	r, err := Open(path, browser.Firefox)
	require.NoError(t, err)
	defer r.Close()

	count, err := r.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

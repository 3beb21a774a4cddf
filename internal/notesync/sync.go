// Package notesync turns browser history into daily markdown notes. One
// synchronizer cycle queries the history reader day by day, renders each
// day's visits as a bullet list, and upserts a note per day into the vault.
package notesync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/runnerr0/histnote/internal/history"
	"github.com/runnerr0/histnote/internal/logger"
	"github.com/runnerr0/histnote/internal/vault"
)

// ErrSyncInFlight is returned when a sync is invoked while another one is
// still running. Overlapping syncs are refused, never interleaved.
var ErrSyncInFlight = errors.New("sync already in progress")

// WriteError reports a failed vault create/modify. Caught per day; sibling
// days keep going.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write note %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Notifier surfaces a transient user-visible message.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(string)

func (f NotifierFunc) Notify(message string) { f(message) }

// DayFailure records one day whose note could not be produced.
type DayFailure struct {
	Date time.Time
	Err  error
}

// Report is the outcome of a range sync: touched note paths most recent
// day first, plus any per-day failures.
type Report struct {
	Touched  []string
	Failures []DayFailure
}

// Options wires a Synchronizer. OpenReader is called once per cycle and
// the reader is closed when the cycle ends; no handle is cached between
// cycles. Commit persists the advanced watermark date string.
type Options struct {
	OpenReader     func() (*history.Reader, error)
	Vault          vault.Vault
	Notifier       Notifier
	Logger         logger.Logger
	Now            func() time.Time
	Commit         func(watermark string) error
	Folder         string
	FileNameFormat string
	FromDate       string // watermark, "YYYY-MM-DD" or empty
}

// Synchronizer owns the watermark for the duration of a cycle: the range
// is computed from the value captured at construction and the advanced
// value is committed exactly once, after the whole range has been walked.
type Synchronizer struct {
	opts Options
	mu   sync.Mutex
}

// New validates options and returns a ready Synchronizer.
func New(opts Options) *Synchronizer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Notifier == nil {
		opts.Notifier = NotifierFunc(func(string) {})
	}
	if opts.FileNameFormat == "" {
		opts.FileNameFormat = "YYYY-MM-DD"
	}
	return &Synchronizer{opts: opts}
}

// startOfDay truncates to the local calendar day boundary.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Sync walks every day from today back to the watermark, upserting one
// note per day with history. Per-day failures are captured in the report
// and notified without aborting sibling days; a database load failure
// aborts the whole cycle and the watermark stays put. On completion the
// watermark advances to today's date string.
func (s *Synchronizer) Sync(ctx context.Context) (*Report, error) {
	if !s.mu.TryLock() {
		s.opts.Notifier.Notify("Sync already in progress.")
		return nil, ErrSyncInFlight
	}
	defer s.mu.Unlock()

	today := startOfDay(s.opts.Now())
	from := today
	if s.opts.FromDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s.opts.FromDate, today.Location())
		if err != nil {
			s.opts.Notifier.Notify(fmt.Sprintf("Invalid start date %q: %v", s.opts.FromDate, err))
			return nil, fmt.Errorf("parse watermark: %w", err)
		}
		from = startOfDay(parsed)
	}

	reader, err := s.opts.OpenReader()
	if err != nil {
		s.opts.Notifier.Notify(fmt.Sprintf("Failed to load database: %v", err))
		return nil, err
	}
	defer reader.Close()

	report := &Report{}

	// Most recent day first: today's note is ready as soon as possible no
	// matter how many historical days follow.
	for day := today; !day.Before(from); day = day.AddDate(0, 0, -1) {
		path, err := s.syncDay(ctx, reader, day)
		if err != nil {
			s.opts.Notifier.Notify(fmt.Sprintf("Failed to sync %s: %v", day.Format("2006-01-02"), err))
			report.Failures = append(report.Failures, DayFailure{Date: day, Err: err})
			continue
		}
		if path != "" {
			report.Touched = append(report.Touched, path)
		}
	}

	if s.opts.Commit != nil {
		if err := s.opts.Commit(today.Format("2006-01-02")); err != nil {
			s.opts.Notifier.Notify(fmt.Sprintf("Failed to save sync state: %v", err))
			return report, fmt.Errorf("commit watermark: %w", err)
		}
	}

	s.opts.Logger.Info("synced notes",
		logger.Int("count", len(report.Touched)),
		logger.Int("failures", len(report.Failures)))

	return report, nil
}

// SyncOne produces the note for a single date, the "open today's history"
// action. Returns the touched note path, or "" when the day has no
// history and no note is written.
func (s *Synchronizer) SyncOne(ctx context.Context, date time.Time) (string, error) {
	if !s.mu.TryLock() {
		s.opts.Notifier.Notify("Sync already in progress.")
		return "", ErrSyncInFlight
	}
	defer s.mu.Unlock()

	reader, err := s.opts.OpenReader()
	if err != nil {
		s.opts.Notifier.Notify(fmt.Sprintf("Failed to load database: %v", err))
		return "", err
	}
	defer reader.Close()

	path, err := s.syncDay(ctx, reader, startOfDay(date))
	if err != nil {
		s.opts.Notifier.Notify(fmt.Sprintf("Failed to sync %s: %v", date.Format("2006-01-02"), err))
		return "", err
	}
	return path, nil
}

// syncDay queries one bounded day, formats it, and upserts the note.
// A day with zero records produces no file and removes none.
func (s *Synchronizer) syncDay(ctx context.Context, reader *history.Reader, day time.Time) (string, error) {
	from := day
	to := day.AddDate(0, 0, 1)

	records, err := reader.Query(ctx, history.QueryOptions{From: &from, To: &to})
	if err != nil {
		return "", err
	}

	name := FormatFileName(day, s.opts.FileNameFormat)
	if len(records) == 0 {
		s.opts.Logger.Debug("no history", logger.String("day", name))
		return "", nil
	}

	path := name + ".md"
	if s.opts.Folder != "" {
		path = s.opts.Folder + "/" + path
	}

	if err := s.upsert(path, FormatNote(records)); err != nil {
		return "", err
	}
	return path, nil
}

// upsert creates the parent folder when missing, then creates or
// overwrites the note.
func (s *Synchronizer) upsert(path, content string) error {
	v := s.opts.Vault

	folder, _ := vault.Split(path)
	if folder != "" && !v.GetFolderByPath(folder) {
		if err := v.CreateFolder(folder); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	if !v.GetFileByPath(path) {
		if err := v.Create(path, content); err != nil {
			return &WriteError{Path: path, Err: err}
		}
		return nil
	}
	if err := v.Modify(path, content); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// CheckConnection opens the database and reports the total record count
// and the oldest visible record's date.
func (s *Synchronizer) CheckConnection(ctx context.Context) (string, error) {
	reader, err := s.opts.OpenReader()
	if err != nil {
		s.opts.Notifier.Notify(fmt.Sprintf("Failed to load database: %v", err))
		return "", err
	}
	defer reader.Close()

	count, err := reader.Count(ctx)
	if err != nil {
		s.opts.Notifier.Notify(fmt.Sprintf("Failed to read database: %v", err))
		return "", err
	}

	oldest, err := reader.Query(ctx, history.QueryOptions{Limit: 1, Ascending: true})
	if err != nil {
		s.opts.Notifier.Notify(fmt.Sprintf("Failed to read database: %v", err))
		return "", err
	}

	message := fmt.Sprintf("Successfully connected. %s records found", formatNumber(count))
	if len(oldest) > 0 {
		message += fmt.Sprintf(" (oldest: %s)", oldest[0].VisitTime.Format("2006-01-02"))
	}

	s.opts.Notifier.Notify(message)
	return message, nil
}

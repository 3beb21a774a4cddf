package history

import "fmt"

// OpenError reports a history database that is missing, unreadable, or not
// a recognized database for the detected browser family. Fatal to the
// current sync attempt.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open history database %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// QueryError reports a failed or schema-mismatched query, typically a
// misdetected browser kind.
type QueryError struct {
	Kind string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s history: %v", e.Kind, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

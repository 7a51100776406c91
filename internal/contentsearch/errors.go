package contentsearch

import "fmt"

// QueryError reports an invalid search query, such as a malformed regular
// expression. It is raised before any store access happens.
type QueryError struct {
	Pattern string
	Err     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid search query %q: %v", e.Pattern, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// DecodeError reports that a file's content could not be converted to
// plain text. During a sweep the searcher treats it as a per-file skip.
type DecodeError struct {
	FileID string
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s file %s: %v", e.Format, e.FileID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StoreAccessError reports a failed call to the backing document store.
// List failures abort the sweep; per-file fetch failures are skips.
type StoreAccessError struct {
	Op     string
	FileID string
	Err    error
}

func (e *StoreAccessError) Error() string {
	if e.FileID != "" {
		return fmt.Sprintf("drive %s for file %s: %v", e.Op, e.FileID, e.Err)
	}
	return fmt.Sprintf("drive %s: %v", e.Op, e.Err)
}

func (e *StoreAccessError) Unwrap() error { return e.Err }

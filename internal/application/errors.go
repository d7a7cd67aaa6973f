package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrCacheUnavailable means no refresh has ever succeeded.
	ErrCacheUnavailable = errors.New("entity cache unavailable")
	// ErrCacheStale flags results served from a generation older than
	// the last design-change notification. Advisory only.
	ErrCacheStale = errors.New("entity cache stale")
	// ErrNotFound is the resolution miss condition.
	ErrNotFound = errors.New("not found")
	// ErrHighlightUnavailable means neither highlight strategy could act.
	ErrHighlightUnavailable = errors.New("highlight unavailable")
)

// RefreshError reports a failed cache refresh. The cache keeps serving
// its previous generation; stale highlights beat no highlights.
type RefreshError struct {
	Generation uint64 // generation still being served
	Err        error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("cache refresh failed (serving generation %d): %v", e.Generation, e.Err)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

func (e *RefreshError) Is(target error) bool {
	return target == ErrCacheUnavailable && e.Generation == 0
}

package domain

import "time"

// EntityKind classifies a resolvable design object.
type EntityKind int

const (
	KindUnknown EntityKind = iota
	KindComponent
	KindNet
)

// String returns the human-readable kind name
func (k EntityKind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindNet:
		return "net"
	default:
		return "unknown"
	}
}

// Handle is an opaque reference into the external design database
// (a net code, a component row, ...). It is only valid for the cache
// generation that produced it; re-resolve by name after a refresh.
type Handle int64

// ItemHandle references a constituent item of a net (pad, track, zone).
type ItemHandle int64

// EntityRecord is one resolvable design object at a given cache generation.
type EntityRecord struct {
	Name       string // canonical identifier, case-sensitive
	Kind       EntityKind
	Handle     Handle
	Generation uint64 // cache generation this record belongs to
}

// EntityRef is a (name, handle) pair as listed by the design database.
type EntityRef struct {
	Name   string
	Handle Handle
}

// Resolution is the outcome of resolving a token against the cache.
// When Found is false, Kind still carries the kind the lookup failed
// for, so feedback can report "component not found" vs "net not found".
type Resolution struct {
	Found  bool
	Kind   EntityKind
	Record EntityRecord
}

// HighlightOutcome reports what the highlight orchestrator achieved.
type HighlightOutcome int

const (
	// HighlightUnavailable means neither strategy could act.
	HighlightUnavailable HighlightOutcome = iota
	// HighlightApplied means the native highlight call succeeded.
	HighlightApplied
	// HighlightAppliedFallback means the bounded selection fallback ran.
	// The highlight is an approximation: items beyond the cap are omitted.
	HighlightAppliedFallback
)

func (o HighlightOutcome) String() string {
	switch o {
	case HighlightApplied:
		return "applied"
	case HighlightAppliedFallback:
		return "applied-fallback"
	default:
		return "unavailable"
	}
}

// RefreshStats holds statistics from a cache refresh
type RefreshStats struct {
	Components int
	Nets       int
	Generation uint64
	Duration   time.Duration
}

// ComponentInfo describes a component beyond its record, for boards
// that can provide it (value, footprint, position in millimeters).
type ComponentInfo struct {
	Reference string
	Value     string
	Footprint string
	Layer     string
	X, Y      float64
	Rotation  float64
	Nets      []string
}

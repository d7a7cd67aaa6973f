package ports

import (
	"errors"

	"crossprobe/internal/domain"
)

// Sentinel results for the design-database boundary. Everything the
// host can do wrong is flattened onto these two by the safe wrapper;
// nothing past that boundary panics or carries host-specific errors.
var (
	// ErrUnavailable means the design database cannot be reached at all
	// (host not running, no board loaded, call crashed).
	ErrUnavailable = errors.New("design database unavailable")

	// ErrUnsupported means the host is reachable but lacks the
	// requested capability (e.g. no native highlight on this version).
	ErrUnsupported = errors.New("capability not supported")
)

// Board is the narrow query/command interface onto the external design
// database. Handles are only valid until the next cache refresh.
type Board interface {
	// Enumeration, used by cache refresh.
	ListComponents() ([]domain.EntityRef, error)
	ListNets() ([]domain.EntityRef, error)

	// Primary highlight strategy. May return ErrUnsupported.
	HighlightComponent(h domain.Handle) error
	HighlightNet(h domain.Handle) error

	// Fallback strategy: bounded enumeration of a net's constituent
	// items (pads, tracks, zones) and a view recenter over them.
	SelectNetItems(h domain.Handle, maxItems int) ([]domain.ItemHandle, error)
	RecenterView(items []domain.ItemHandle) error

	// ClearSelection drops any highlight or selection. Idempotent.
	ClearSelection() error
}

// ComponentDetailer is an optional extension for boards that can
// describe a component (value, footprint, placement, connected nets).
type ComponentDetailer interface {
	ComponentInfo(h domain.Handle) (*domain.ComponentInfo, error)
}

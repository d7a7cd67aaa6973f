package application

import (
	"crossprobe/internal/domain"
	"crossprobe/internal/ports"
)

// FallbackItemCap bounds the fallback selection. Unbounded selection on
// large designs is an observed performance hazard; items beyond the cap
// are silently omitted and the outcome is reported as a fallback.
const FallbackItemCap = 200

// Capabilities are the host capability flags passed in explicitly
// instead of probed via ambient state.
type Capabilities struct {
	// NativeHighlight is false when the host build lacks the direct
	// highlight call, forcing the selection fallback.
	NativeHighlight bool
}

// DefaultCapabilities assumes a full-featured host.
func DefaultCapabilities() Capabilities {
	return Capabilities{NativeHighlight: true}
}

// Highlighter drives the canvas highlight for a resolved entity:
// native highlight first, bounded selection as a net fallback, and a
// guaranteed-clean canvas when neither works.
type Highlighter struct {
	board    ports.Board
	caps     Capabilities
	maxItems int
}

// NewHighlighter creates a highlighter for the given board. The board
// is expected to already be safe-wrapped.
func NewHighlighter(board ports.Board, caps Capabilities) *Highlighter {
	return &Highlighter{
		board:    board,
		caps:     caps,
		maxItems: FallbackItemCap,
	}
}

// Highlight attempts the primary strategy, then the fallback. On total
// failure any intermediate selection is cleared before returning, so
// the canvas never ends up in a partial state.
func (h *Highlighter) Highlight(rec domain.EntityRecord) domain.HighlightOutcome {
	// One active highlight at a time, same as a fresh click in the host.
	h.Clear()

	if h.caps.NativeHighlight && h.highlightNative(rec) == nil {
		return domain.HighlightApplied
	}

	if rec.Kind == domain.KindNet {
		return h.highlightFallback(rec)
	}
	return domain.HighlightUnavailable
}

func (h *Highlighter) highlightNative(rec domain.EntityRecord) error {
	switch rec.Kind {
	case domain.KindNet:
		return h.board.HighlightNet(rec.Handle)
	default:
		return h.board.HighlightComponent(rec.Handle)
	}
}

// highlightFallback selects up to maxItems of the net's constituent
// items and recenters the view over them. An approximation, not a
// complete highlight: the outcome is AppliedFallback, never Applied.
func (h *Highlighter) highlightFallback(rec domain.EntityRecord) domain.HighlightOutcome {
	items, err := h.board.SelectNetItems(rec.Handle, h.maxItems)
	if err != nil || len(items) == 0 {
		h.Clear()
		return domain.HighlightUnavailable
	}
	if len(items) > h.maxItems {
		items = items[:h.maxItems]
	}
	if err := h.board.RecenterView(items); err != nil {
		h.Clear()
		return domain.HighlightUnavailable
	}
	return domain.HighlightAppliedFallback
}

// Clear drops any active highlight or selection. Idempotent and safe
// to call when nothing is highlighted.
func (h *Highlighter) Clear() {
	h.board.ClearSelection()
}

package application

import (
	"fmt"
	"sync/atomic"
	"time"

	"crossprobe/internal/domain"
	"crossprobe/internal/ports"
)

// snapshot is one immutable cache generation. Readers always see a
// complete snapshot or none; Refresh builds a new one fully before
// publishing it with a single pointer swap.
type snapshot struct {
	generation uint64
	components map[string]domain.EntityRecord
	nets       map[string]domain.EntityRecord
}

// EntityCache maps canonical entity names to design-object handles for
// the two resolvable kinds. One instance per open document/session;
// contents are never persisted. Handles stored in a snapshot are only
// valid while that snapshot is current — callers re-resolve by name
// after a refresh instead of retaining records.
type EntityCache struct {
	board ports.Board

	snap  atomic.Pointer[snapshot]
	stale atomic.Bool
}

// NewEntityCache creates an empty cache reading through the given
// board. The board is expected to already be safe-wrapped.
func NewEntityCache(board ports.Board) *EntityCache {
	return &EntityCache{board: board}
}

// Refresh rebuilds both kind maps from the design database and bumps
// the generation. All-or-nothing: on any listing failure the previous
// generation stays fully intact and a *RefreshError is returned.
func (c *EntityCache) Refresh() (*domain.RefreshStats, error) {
	start := time.Now()

	components, err := c.board.ListComponents()
	if err != nil {
		return nil, &RefreshError{Generation: c.Generation(), Err: fmt.Errorf("listing components: %w", err)}
	}
	nets, err := c.board.ListNets()
	if err != nil {
		return nil, &RefreshError{Generation: c.Generation(), Err: fmt.Errorf("listing nets: %w", err)}
	}

	next := &snapshot{
		generation: c.Generation() + 1,
		components: make(map[string]domain.EntityRecord, len(components)),
		nets:       make(map[string]domain.EntityRecord, len(nets)),
	}
	for _, ref := range components {
		next.components[ref.Name] = domain.EntityRecord{
			Name:       ref.Name,
			Kind:       domain.KindComponent,
			Handle:     ref.Handle,
			Generation: next.generation,
		}
	}
	for _, ref := range nets {
		next.nets[ref.Name] = domain.EntityRecord{
			Name:       ref.Name,
			Kind:       domain.KindNet,
			Handle:     ref.Handle,
			Generation: next.generation,
		}
	}

	c.snap.Store(next)
	c.stale.Store(false)

	return &domain.RefreshStats{
		Components: len(next.components),
		Nets:       len(next.nets),
		Generation: next.generation,
		Duration:   time.Since(start),
	}, nil
}

// Lookup returns the record for (kind, name) in the current generation.
// Case-sensitive exact match only.
func (c *EntityCache) Lookup(kind domain.EntityKind, name string) (domain.EntityRecord, bool) {
	snap := c.snap.Load()
	if snap == nil {
		return domain.EntityRecord{}, false
	}
	var rec domain.EntityRecord
	var ok bool
	switch kind {
	case domain.KindComponent:
		rec, ok = snap.components[name]
	case domain.KindNet:
		rec, ok = snap.nets[name]
	}
	return rec, ok
}

// Generation returns the current cache generation, 0 before the first
// successful refresh.
func (c *EntityCache) Generation() uint64 {
	if snap := c.snap.Load(); snap != nil {
		return snap.generation
	}
	return 0
}

// IsStale reports whether the cache should not be trusted: no refresh
// has ever succeeded, or the design changed since the last one.
func (c *EntityCache) IsStale() bool {
	return c.snap.Load() == nil || c.stale.Load()
}

// MarkStale records a design-change notification from the host. The
// cache keeps serving its snapshot; it is the caller's choice when to
// refresh.
func (c *EntityCache) MarkStale() {
	c.stale.Store(true)
}

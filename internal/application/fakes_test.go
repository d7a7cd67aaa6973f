package application

import (
	"sync"
	"time"

	"crossprobe/internal/domain"
	"crossprobe/internal/ports"
)

// fakeBoard is a scripted ports.Board for cache and highlighter tests.
type fakeBoard struct {
	components []domain.EntityRef
	nets       []domain.EntityRef
	netItems   map[domain.Handle][]domain.ItemHandle

	listComponentsErr error
	listNetsErr       error
	highlightErr      error
	selectErr         error
	recenterErr       error

	highlighted []string
	recentered  [][]domain.ItemHandle
	clears      int
}

func (b *fakeBoard) ListComponents() ([]domain.EntityRef, error) {
	if b.listComponentsErr != nil {
		return nil, b.listComponentsErr
	}
	return b.components, nil
}

func (b *fakeBoard) ListNets() ([]domain.EntityRef, error) {
	if b.listNetsErr != nil {
		return nil, b.listNetsErr
	}
	return b.nets, nil
}

func (b *fakeBoard) HighlightComponent(h domain.Handle) error {
	if b.highlightErr != nil {
		return b.highlightErr
	}
	b.highlighted = append(b.highlighted, "component")
	return nil
}

func (b *fakeBoard) HighlightNet(h domain.Handle) error {
	if b.highlightErr != nil {
		return b.highlightErr
	}
	b.highlighted = append(b.highlighted, "net")
	return nil
}

func (b *fakeBoard) SelectNetItems(h domain.Handle, maxItems int) ([]domain.ItemHandle, error) {
	if b.selectErr != nil {
		return nil, b.selectErr
	}
	items := b.netItems[h]
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items, nil
}

func (b *fakeBoard) RecenterView(items []domain.ItemHandle) error {
	if b.recenterErr != nil {
		return b.recenterErr
	}
	b.recentered = append(b.recentered, items)
	return nil
}

func (b *fakeBoard) ClearSelection() error {
	b.clears++
	return nil
}

// fakeView records every style application in order.
type fakeView struct {
	mu     sync.Mutex
	events []styleEvent
}

type styleEvent struct {
	span  domain.Span
	style ports.TokenStyle
}

func (v *fakeView) ApplyTokenStyle(span domain.Span, style ports.TokenStyle) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, styleEvent{span: span, style: style})
}

func (v *fakeView) last() (styleEvent, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.events) == 0 {
		return styleEvent{}, false
	}
	return v.events[len(v.events)-1], true
}

func (v *fakeView) count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.events)
}

// fakeTimer lets tests fire or drop settle callbacks by hand.
type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := t.stopped
	t.stopped = true
	return !was
}

// installFakeTimers rewires f to hand-fired timers and returns the
// list of timers armed so far.
func installFakeTimers(f *Feedback) *[]*fakeTimer {
	timers := &[]*fakeTimer{}
	f.newTimer = func(d time.Duration, fn func()) settleTimer {
		t := &fakeTimer{fn: fn}
		*timers = append(*timers, t)
		return t
	}
	return timers
}

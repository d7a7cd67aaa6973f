package application

import (
	"sync"
	"time"

	"crossprobe/internal/domain"
	"crossprobe/internal/ports"
)

// DefaultSettleDelay is the dwell before a styled token settles.
const DefaultSettleDelay = 2 * time.Second

type settleTimer interface {
	Stop() bool
}

// Feedback drives the visible styling of the clicked token:
// Idle → Pending → (Found | NotFound) → Settled → Idle.
//
// At most one token is ever active; a new click forces the previous
// token back to the default style before the new one advances, and the
// settle timer is single-shot, cancellable, and rearmed per click — a
// cancelled click's timer can never repaint an unrelated token later.
type Feedback struct {
	view   ports.NoteView
	settle time.Duration

	// newTimer is swapped out in tests to fire settles by hand.
	newTimer func(d time.Duration, fn func()) settleTimer

	mu    sync.Mutex
	state domain.FeedbackState
	span  domain.Span
	timer settleTimer
	seq   uint64
}

// NewFeedback creates an idle feedback machine styling through view.
// A non-positive settle falls back to DefaultSettleDelay.
func NewFeedback(view ports.NoteView, settle time.Duration) *Feedback {
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	return &Feedback{
		view:   view,
		settle: settle,
		newTimer: func(d time.Duration, fn func()) settleTimer {
			return time.AfterFunc(d, fn)
		},
	}
}

// Begin starts feedback for a new click. Any previous token is forced
// back to the default style and its settle timer is disarmed first.
func (f *Feedback) Begin(span domain.Span) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.reset()
	f.state = domain.FeedbackPending
	f.span = span
}

// Resolve styles the pending token from the resolution outcome and
// arms the settle timer. No-op unless a click is pending.
func (f *Feedback) Resolve(found bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != domain.FeedbackPending {
		return
	}

	if found {
		f.state = domain.FeedbackFound
		f.view.ApplyTokenStyle(f.span, ports.StyleFound)
	} else {
		f.state = domain.FeedbackNotFound
		f.view.ApplyTokenStyle(f.span, ports.StyleNotFound)
	}

	seq := f.seq
	f.timer = f.newTimer(f.settle, func() { f.onSettle(seq) })
}

// onSettle marks the token settled: styling persists but the token is
// inert until the next click. The sequence check drops callbacks from
// timers that lost a race with Stop.
func (f *Feedback) onSettle(seq uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq || !f.state.Active() {
		return
	}
	f.state = domain.FeedbackSettled
	f.timer = nil
}

// Cancel disarms any pending settle timer without touching styles.
// For document close or switch.
func (f *Feedback) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.state = domain.FeedbackIdle
	f.span = domain.Span{}
}

// Reset returns the active token to the default style and goes idle.
func (f *Feedback) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

// reset assumes f.mu is held.
func (f *Feedback) reset() {
	f.seq++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	if f.state != domain.FeedbackIdle {
		f.view.ApplyTokenStyle(f.span, ports.StyleDefault)
	}
	f.state = domain.FeedbackIdle
	f.span = domain.Span{}
}

// State returns the current feedback state.
func (f *Feedback) State() domain.FeedbackState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// ActiveSpan returns the span currently carrying feedback styling.
func (f *Feedback) ActiveSpan() (domain.Span, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == domain.FeedbackIdle {
		return domain.Span{}, false
	}
	return f.span, true
}

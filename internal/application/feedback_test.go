package application

import (
	"testing"
	"time"

	"crossprobe/internal/domain"
	"crossprobe/internal/ports"
)

func TestFeedback_FoundLifecycle(t *testing.T) {
	view := &fakeView{}
	f := NewFeedback(view, time.Second)
	timers := installFakeTimers(f)

	span := domain.Span{Start: 6, End: 17}

	f.Begin(span)
	if f.State() != domain.FeedbackPending {
		t.Fatalf("expected Pending, got %v", f.State())
	}

	f.Resolve(true)
	if f.State() != domain.FeedbackFound {
		t.Fatalf("expected Found, got %v", f.State())
	}
	if ev, ok := view.last(); !ok || ev.span != span || ev.style != ports.StyleFound {
		t.Errorf("expected Found style on %v, got %+v", span, ev)
	}

	if len(*timers) != 1 {
		t.Fatalf("expected one armed timer, got %d", len(*timers))
	}
	(*timers)[0].fn()

	if f.State() != domain.FeedbackSettled {
		t.Errorf("expected Settled after the timer fires, got %v", f.State())
	}
	// Settling keeps the styling; no extra style event.
	if ev, _ := view.last(); ev.style != ports.StyleFound {
		t.Errorf("settle must not restyle, got %+v", ev)
	}
}

func TestFeedback_NotFoundStyling(t *testing.T) {
	view := &fakeView{}
	f := NewFeedback(view, time.Second)
	installFakeTimers(f)

	span := domain.Span{Start: 22, End: 24}
	f.Begin(span)
	f.Resolve(false)

	if f.State() != domain.FeedbackNotFound {
		t.Errorf("expected NotFound, got %v", f.State())
	}
	if ev, ok := view.last(); !ok || ev.style != ports.StyleNotFound {
		t.Errorf("expected NotFound style, got %+v", ev)
	}
}

func TestFeedback_NewClickSupersedesPrevious(t *testing.T) {
	view := &fakeView{}
	f := NewFeedback(view, time.Second)
	timers := installFakeTimers(f)

	spanA := domain.Span{Start: 0, End: 2}
	spanB := domain.Span{Start: 10, End: 13}

	f.Begin(spanA)
	f.Resolve(true)
	staleTimer := (*timers)[0]

	// Second click before A settles.
	f.Begin(spanB)
	if !staleTimer.stopped {
		t.Error("the superseded click's timer must be disarmed")
	}

	// A went back to default before B advanced.
	found := false
	for _, ev := range view.events {
		if ev.span == spanA && ev.style == ports.StyleDefault {
			found = true
		}
	}
	if !found {
		t.Error("previous token must be restyled to default")
	}

	f.Resolve(true)
	if span, ok := f.ActiveSpan(); !ok || span != spanB {
		t.Errorf("expected active span %v, got %v ok=%v", spanB, span, ok)
	}

	// Even if the stale timer's callback sneaks through Stop, it must
	// not touch the new click.
	staleTimer.fn()
	if f.State() != domain.FeedbackFound {
		t.Errorf("stale settle must be ignored, got %v", f.State())
	}

	(*timers)[1].fn()
	if f.State() != domain.FeedbackSettled {
		t.Errorf("expected Settled, got %v", f.State())
	}
}

func TestFeedback_CancelLeavesStylesAlone(t *testing.T) {
	view := &fakeView{}
	f := NewFeedback(view, time.Second)
	timers := installFakeTimers(f)

	f.Begin(domain.Span{Start: 0, End: 2})
	f.Resolve(true)
	before := view.count()

	f.Cancel()
	if f.State() != domain.FeedbackIdle {
		t.Errorf("expected Idle after Cancel, got %v", f.State())
	}
	if !(*timers)[0].stopped {
		t.Error("Cancel must disarm the timer")
	}
	if view.count() != before {
		t.Error("Cancel must not restyle anything")
	}

	// A late callback after Cancel is a no-op.
	(*timers)[0].fn()
	if f.State() != domain.FeedbackIdle {
		t.Errorf("expected Idle, got %v", f.State())
	}
}

func TestFeedback_ResetRestoresDefaultStyle(t *testing.T) {
	view := &fakeView{}
	f := NewFeedback(view, time.Second)
	installFakeTimers(f)

	span := domain.Span{Start: 4, End: 8}
	f.Begin(span)
	f.Resolve(false)

	f.Reset()
	if f.State() != domain.FeedbackIdle {
		t.Errorf("expected Idle, got %v", f.State())
	}
	if ev, ok := view.last(); !ok || ev.span != span || ev.style != ports.StyleDefault {
		t.Errorf("expected default restyle of %v, got %+v", span, ev)
	}
	if _, ok := f.ActiveSpan(); ok {
		t.Error("no span should be active after Reset")
	}
}

func TestFeedback_ResolveRequiresPending(t *testing.T) {
	view := &fakeView{}
	f := NewFeedback(view, time.Second)
	installFakeTimers(f)

	f.Resolve(true)
	if f.State() != domain.FeedbackIdle || view.count() != 0 {
		t.Errorf("Resolve without Begin must be a no-op, state=%v events=%d", f.State(), view.count())
	}

	f.Begin(domain.Span{Start: 0, End: 2})
	f.Resolve(true)
	n := view.count()
	f.Resolve(false)
	if view.count() != n || f.State() != domain.FeedbackFound {
		t.Error("a second Resolve must not restyle or change state")
	}
}

func TestFeedback_DefaultSettleDelay(t *testing.T) {
	f := NewFeedback(&fakeView{}, 0)
	if f.settle != DefaultSettleDelay {
		t.Errorf("expected %v, got %v", DefaultSettleDelay, f.settle)
	}
}

package views

import (
	"sync"

	"crossprobe/internal/domain"
	"crossprobe/internal/ports"
)

// StyleSink implements ports.NoteView for the TUI: it records the
// styling commands issued by the feedback machine so the next render
// can paint them. Safe for the settle timer goroutine.
type StyleSink struct {
	mu     sync.Mutex
	styles map[domain.Span]ports.TokenStyle
}

// NewStyleSink creates an empty sink.
func NewStyleSink() *StyleSink {
	return &StyleSink{styles: make(map[domain.Span]ports.TokenStyle)}
}

// ApplyTokenStyle records the style for a span. Styling a span back to
// default removes the record.
func (s *StyleSink) ApplyTokenStyle(span domain.Span, style ports.TokenStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if style == ports.StyleDefault {
		delete(s.styles, span)
		return
	}
	s.styles[span] = style
}

// StyleFor returns the recorded style for a span.
func (s *StyleSink) StyleFor(span domain.Span) ports.TokenStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.styles[span]
}

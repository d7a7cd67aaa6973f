package application

import (
	"time"

	"crossprobe/internal/domain"
	"crossprobe/internal/ports"
)

// Session wires the linking engine for one open document: the
// safe-wrapped board, the entity cache, and the resolver, highlighter
// and feedback machine reading it. One session per document view.
type Session struct {
	ScanCfg     domain.ScanConfig
	Board       ports.Board
	Cache       *EntityCache
	Resolver    *Resolver
	Highlighter *Highlighter
	Feedback    *Feedback
}

// NewSession builds a session around an already safe-wrapped board.
// view may be nil when no styling surface exists (CLI, MCP); styling
// commands are then dropped.
func NewSession(board ports.Board, scanCfg domain.ScanConfig, caps Capabilities, view ports.NoteView, settle time.Duration) *Session {
	if view == nil {
		view = nopView{}
	}
	cache := NewEntityCache(board)
	return &Session{
		ScanCfg:     scanCfg,
		Board:       board,
		Cache:       cache,
		Resolver:    NewResolver(cache),
		Highlighter: NewHighlighter(board, caps),
		Feedback:    NewFeedback(view, settle),
	}
}

// Close cancels pending feedback timers and clears the canvas.
func (s *Session) Close() {
	s.Feedback.Cancel()
	s.Highlighter.Clear()
}

type nopView struct{}

func (nopView) ApplyTokenStyle(domain.Span, ports.TokenStyle) {}

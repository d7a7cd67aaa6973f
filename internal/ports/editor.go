package ports

import "crossprobe/internal/domain"

// TokenStyle is the visual treatment of a token span in the note view.
type TokenStyle int

const (
	StyleDefault TokenStyle = iota
	StyleFound
	StyleNotFound
)

func (s TokenStyle) String() string {
	switch s {
	case StyleFound:
		return "found"
	case StyleNotFound:
		return "not-found"
	default:
		return "default"
	}
}

// NoteView is the editor collaborator: the surface that renders note
// text and receives styling commands for token spans.
type NoteView interface {
	ApplyTokenStyle(span domain.Span, style TokenStyle)
}

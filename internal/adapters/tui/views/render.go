package views

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"

	"crossprobe/internal/adapters/tui/styles"
	"crossprobe/internal/domain"
)

// RenderNote paints the note text with token and cursor styling.
// Tokens are non-overlapping and sorted; the cursor is a byte offset.
func RenderNote(text string, tokens []domain.Token, cursor int, sink *StyleSink) string {
	cursorEnd := cursor
	if cursor >= 0 && cursor < len(text) {
		_, size := utf8.DecodeRuneInString(text[cursor:])
		cursorEnd = cursor + size
	}

	bounds := []int{0, len(text)}
	for _, t := range tokens {
		bounds = append(bounds, t.Span.Start, t.Span.End)
	}
	if cursorEnd > cursor {
		bounds = append(bounds, cursor, cursorEnd)
	}
	sort.Ints(bounds)

	var b strings.Builder
	for i := 0; i+1 < len(bounds); i++ {
		start, end := bounds[i], bounds[i+1]
		if start >= end {
			continue
		}
		b.WriteString(renderSegment(text[start:end], start, tokens, cursor, cursorEnd, sink))
	}
	return b.String()
}

func renderSegment(seg string, start int, tokens []domain.Token, cursor, cursorEnd int, sink *StyleSink) string {
	// Cursor wins over token styling for its single rune.
	if start >= cursor && start < cursorEnd {
		if seg == "\n" {
			return styles.Cursor.Render(" ") + "\n"
		}
		return styles.Cursor.Render(seg)
	}

	for _, t := range tokens {
		if start >= t.Span.Start && start < t.Span.End {
			return styles.TokenStyle(sink.StyleFor(t.Span)).Render(seg)
		}
	}
	return seg
}

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

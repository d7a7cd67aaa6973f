package views

import (
	"strings"
	"testing"

	"crossprobe/internal/domain"
	"crossprobe/internal/ports"
)

func TestStyleSink(t *testing.T) {
	sink := NewStyleSink()
	span := domain.Span{Start: 6, End: 17}

	if sink.StyleFor(span) != ports.StyleDefault {
		t.Error("unstyled spans read as default")
	}

	sink.ApplyTokenStyle(span, ports.StyleFound)
	if sink.StyleFor(span) != ports.StyleFound {
		t.Error("expected the recorded style")
	}

	sink.ApplyTokenStyle(span, ports.StyleNotFound)
	if sink.StyleFor(span) != ports.StyleNotFound {
		t.Error("a later style replaces the earlier one")
	}

	// Styling back to default drops the record entirely.
	sink.ApplyTokenStyle(span, ports.StyleDefault)
	if sink.StyleFor(span) != ports.StyleDefault {
		t.Error("expected default after reset")
	}
}

func TestRenderNote_KeepsText(t *testing.T) {
	text := "Check [[NET:GND]] and R1"
	tokens := domain.ScanAll(domain.ScanConfig{}, text)
	sink := NewStyleSink()

	out := RenderNote(text, tokens, 0, sink)

	// Styling adds escape sequences but never drops or reorders text.
	plain := stripANSI(out)
	if plain != text {
		t.Errorf("rendered text mismatch:\nwant %q\ngot  %q", text, plain)
	}
}

func TestRenderNote_CursorOnNewline(t *testing.T) {
	text := "R1\nC3"
	out := RenderNote(text, nil, 2, NewStyleSink())

	// The newline survives so the line structure is intact.
	if !strings.Contains(stripANSI(out), "\n") {
		t.Errorf("newline lost: %q", out)
	}
}

// stripANSI removes CSI escape sequences from rendered output.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

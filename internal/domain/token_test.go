package domain

import (
	"strings"
	"testing"
)

func TestScan_ExplicitForm(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		offset   int
		wantName string
		wantKind EntityKind
	}{
		{
			name:     "net with kind prefix",
			text:     "see [[NET:GND]] here",
			offset:   8,
			wantName: "GND",
			wantKind: KindNet,
		},
		{
			name:     "component with kind prefix",
			text:     "see [[CMP:R1]] here",
			offset:   6,
			wantName: "R1",
			wantKind: KindComponent,
		},
		{
			name:     "bare brackets default to component",
			text:     "see [[R1]] here",
			offset:   6,
			wantName: "R1",
			wantKind: KindComponent,
		},
		{
			name:     "offset on opening bracket",
			text:     "[[NET:VCC]]",
			offset:   0,
			wantName: "VCC",
			wantKind: KindNet,
		},
		{
			name:     "offset on closing bracket",
			text:     "[[NET:VCC]]",
			offset:   10,
			wantName: "VCC",
			wantKind: KindNet,
		},
		{
			name:     "name with full charset",
			text:     "x [[NET:CLK_IN+3.3V-A]] y",
			offset:   10,
			wantName: "CLK_IN+3.3V-A",
			wantKind: KindNet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := Scan(ScanConfig{}, tt.text, tt.offset)
			if !ok {
				t.Fatalf("expected token at offset %d", tt.offset)
			}
			if tok.Name != tt.wantName {
				t.Errorf("expected name %q, got %q", tt.wantName, tok.Name)
			}
			if tok.Kind != tt.wantKind {
				t.Errorf("expected kind %v, got %v", tt.wantKind, tok.Kind)
			}
			if tok.Syntax != SyntaxExplicit {
				t.Errorf("expected explicit syntax, got %v", tok.Syntax)
			}
			if !tok.Span.Contains(tt.offset) {
				t.Errorf("span %v does not contain offset %d", tok.Span, tt.offset)
			}
		})
	}
}

func TestScan_ExplicitKindIndependentOfCache(t *testing.T) {
	// The declared kind must come from syntax alone; NONSENSE does not
	// need to exist anywhere.
	tok, ok := Scan(ScanConfig{}, "[[NET:NONSENSE]]", 5)
	if !ok {
		t.Fatal("expected token")
	}
	if tok.Kind != KindNet {
		t.Errorf("expected net kind, got %v", tok.Kind)
	}
}

func TestScan_UnknownKindPrefixDoesNotScan(t *testing.T) {
	// Colon is outside the name charset, so [[ZONE:X]] fails the
	// bracket grammar instead of producing a bogus token.
	if tok, ok := Scan(ScanConfig{}, "[[ZONE:GND]]", 4); ok {
		t.Errorf("expected no token, got %+v", tok)
	}
}

func TestScan_Shorthand(t *testing.T) {
	text := "probe @VCC now"

	tok, ok := Scan(ScanConfig{}, text, 7)
	if !ok {
		t.Fatal("expected token")
	}
	if tok.Name != "VCC" {
		t.Errorf("expected name VCC, got %q", tok.Name)
	}
	if tok.Kind != KindUnknown {
		t.Errorf("shorthand must leave kind unknown, got %v", tok.Kind)
	}
	if tok.Raw != "@VCC" {
		t.Errorf("expected raw @VCC, got %q", tok.Raw)
	}
	if tok.Span.Start != 6 || tok.Span.End != 10 {
		t.Errorf("unexpected span %+v", tok.Span)
	}
}

func TestScan_ShorthandRejectsEmailLikeText(t *testing.T) {
	if _, ok := Scan(ScanConfig{}, "mail me at bob@example.com", 15); ok {
		t.Error("expected no token inside an e-mail address")
	}
}

func TestScan_BareDesignator(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   string
		ok     bool
	}{
		{name: "simple", text: "swap R1 first", offset: 5, want: "R1", ok: true},
		{name: "trailing letter", text: "check LED12A too", offset: 8, want: "LED12A", ok: true},
		{name: "digits only is not a designator", text: "see 42 here", offset: 4, ok: false},
		{name: "letters only is not a designator", text: "plain word", offset: 2, ok: false},
		{name: "embedded in longer word", text: "ERROR42X7 log", offset: 1, ok: false},
		{name: "two trailing letters fail the grammar", text: "ab R1XY cd", offset: 4, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := Scan(ScanConfig{}, tt.text, tt.offset)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v (token %+v)", tt.ok, ok, tok)
			}
			if !tt.ok {
				return
			}
			if tok.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tok.Name)
			}
			if tok.Kind != KindComponent {
				t.Errorf("bare designators are components, got %v", tok.Kind)
			}
		})
	}
}

func TestScan_DesignatorPrefixAllowlist(t *testing.T) {
	cfg := ScanConfig{DesignatorPrefixes: []string{"R", "C", "U", "LED"}}

	if tok, ok := Scan(cfg, "use R1 here", 4); !ok || tok.Name != "R1" {
		t.Errorf("R1 should scan with allowlist, got ok=%v tok=%+v", ok, tok)
	}
	if tok, ok := Scan(cfg, "use LED12 here", 5); !ok || tok.Name != "LED12" {
		t.Errorf("LED12 should scan with allowlist, got ok=%v tok=%+v", ok, tok)
	}
	if _, ok := Scan(cfg, "rev A3 board", 4); ok {
		t.Error("A3 should not scan: prefix A not in allowlist")
	}
}

func TestScan_OffsetOutsideAnySpan(t *testing.T) {
	text := "Check [[NET:GND]] and R1 near U3"

	for _, offset := range []int{0, 4, 5, 17, 20, 24, 25} {
		if tok, ok := Scan(ScanConfig{}, text, offset); ok {
			t.Errorf("offset %d: expected no token, got %q", offset, tok.Name)
		}
	}

	if _, ok := Scan(ScanConfig{}, text, -1); ok {
		t.Error("negative offset must not scan")
	}
	if _, ok := Scan(ScanConfig{}, text, len(text)); ok {
		t.Error("offset past end must not scan")
	}
}

func TestScan_FamilyPrecedence(t *testing.T) {
	// @R1: shorthand and bare overlap on the R1 bytes; shorthand wins.
	tok, ok := Scan(ScanConfig{}, "fix @R1 now", 5)
	if !ok {
		t.Fatal("expected token")
	}
	if tok.Syntax != SyntaxShorthand {
		t.Errorf("expected shorthand precedence over bare, got %v", tok.Syntax)
	}
	if tok.Kind != KindUnknown {
		t.Errorf("expected unknown kind, got %v", tok.Kind)
	}

	// Explicit beats everything inside its span.
	tok, ok = Scan(ScanConfig{}, "[[NET:R1]]", 7)
	if !ok {
		t.Fatal("expected token")
	}
	if tok.Syntax != SyntaxExplicit || tok.Kind != KindNet {
		t.Errorf("expected explicit net token, got %+v", tok)
	}
}

func TestScan_IsPure(t *testing.T) {
	text := "Check [[NET:GND]] and R1"
	before := strings.Clone(text)

	for i := 0; i < len(text); i++ {
		Scan(ScanConfig{}, text, i)
	}
	if text != before {
		t.Error("scan must not mutate its input")
	}
}

func TestScanAll(t *testing.T) {
	text := "Check [[NET:GND]] and R1 near U3, probe @VCC"

	tokens := ScanAll(ScanConfig{}, text)
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %+v", len(tokens), tokens)
	}

	wantNames := []string{"GND", "R1", "U3", "VCC"}
	for i, want := range wantNames {
		if tokens[i].Name != want {
			t.Errorf("token %d: expected %q, got %q", i, want, tokens[i].Name)
		}
	}

	for i := 1; i < len(tokens); i++ {
		if tokens[i].Span.Start < tokens[i-1].Span.End {
			t.Errorf("tokens overlap or unsorted: %+v then %+v", tokens[i-1], tokens[i])
		}
	}
}

func TestScanAll_ExplicitClaimsItsSpan(t *testing.T) {
	// The R1 inside the brackets must not be re-reported as bare.
	tokens := ScanAll(ScanConfig{}, "[[CMP:R1]]")
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %+v", len(tokens), tokens)
	}
	if tokens[0].Syntax != SyntaxExplicit {
		t.Errorf("expected explicit token, got %v", tokens[0].Syntax)
	}
}

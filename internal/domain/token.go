package domain

import (
	"regexp"
	"strings"
)

// TokenSyntax identifies which syntax family produced a token.
type TokenSyntax int

const (
	SyntaxExplicit  TokenSyntax = iota // [[NET:GND]], [[R1]]
	SyntaxShorthand                    // @GND
	SyntaxBare                         // R1
)

// Span is a half-open [Start, End) byte range in the source text.
// Used only for styling; never retained across clicks.
type Span struct {
	Start int
	End   int
}

// Contains reports whether the offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Overlaps reports whether two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Token is a scanned reference candidate.
type Token struct {
	Raw    string     // substring matched, brackets/prefix included
	Name   string     // extracted canonical entity name
	Kind   EntityKind // KindUnknown when the cache must disambiguate
	Syntax TokenSyntax
	Span   Span
}

// ScanConfig carries the externally-configurable parts of the token
// grammar. The zero value accepts any letter run as a designator prefix.
type ScanConfig struct {
	// DesignatorPrefixes restricts which letter prefixes count as bare
	// designators (e.g. R, C, U, LED). Empty means any letters qualify.
	DesignatorPrefixes []string
}

// Entity names: alphanumerics plus _ + - .
// Explicit form: [[NET:GND]] / [[CMP:R1]] / [[R1]] (kind defaults to component).
// A colon is outside the name charset, so unknown kind prefixes simply fail
// the bracket grammar instead of scanning as a bogus name.
var (
	explicitPattern  = regexp.MustCompile(`\[\[(?:(NET|CMP):)?([A-Za-z0-9_+.\-]+)\]\]`)
	shorthandPattern = regexp.MustCompile(`@([A-Za-z0-9_+.\-]+)`)
	barePattern      = regexp.MustCompile(`[A-Za-z]+[0-9]+[A-Za-z]?`)
)

func isNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '+' || c == '.' || c == '-':
		return true
	}
	return false
}

// Scan finds the reference token whose span contains offset, if any.
// The three syntax families are evaluated in fixed precedence order
// (explicit, then shorthand, then bare designator); the first family
// with a containing span wins. Pure: no cache access, no side effects.
func Scan(cfg ScanConfig, text string, offset int) (Token, bool) {
	if offset < 0 || offset >= len(text) {
		return Token{}, false
	}
	if tok, ok := scanExplicit(text, offset); ok {
		return tok, true
	}
	if tok, ok := scanShorthand(text, offset); ok {
		return tok, true
	}
	return scanBare(cfg, text, offset)
}

// ScanAll enumerates every token in the buffer, in source order.
// Family precedence applies per span: a region claimed by an explicit
// token is not re-reported as shorthand or bare.
func ScanAll(cfg ScanConfig, text string) []Token {
	var tokens []Token

	claimed := func(span Span) bool {
		for _, t := range tokens {
			if t.Span.Overlaps(span) {
				return true
			}
		}
		return false
	}

	for _, m := range explicitPattern.FindAllStringSubmatchIndex(text, -1) {
		tokens = append(tokens, explicitToken(text, m))
	}
	for _, m := range shorthandPattern.FindAllStringSubmatchIndex(text, -1) {
		tok, ok := shorthandToken(text, m)
		if ok && !claimed(tok.Span) {
			tokens = append(tokens, tok)
		}
	}
	for _, m := range barePattern.FindAllStringIndex(text, -1) {
		tok, ok := bareToken(cfg, text, m[0], m[1])
		if ok && !claimed(tok.Span) {
			tokens = append(tokens, tok)
		}
	}

	sortTokens(tokens)
	return tokens
}

func sortTokens(tokens []Token) {
	// Insertion sort: token lists are short and mostly ordered already.
	for i := 1; i < len(tokens); i++ {
		for j := i; j > 0 && tokens[j].Span.Start < tokens[j-1].Span.Start; j-- {
			tokens[j], tokens[j-1] = tokens[j-1], tokens[j]
		}
	}
}

func scanExplicit(text string, offset int) (Token, bool) {
	for _, m := range explicitPattern.FindAllStringSubmatchIndex(text, -1) {
		tok := explicitToken(text, m)
		if tok.Span.Contains(offset) {
			return tok, true
		}
	}
	return Token{}, false
}

func explicitToken(text string, m []int) Token {
	kind := KindComponent
	if m[2] >= 0 && text[m[2]:m[3]] == "NET" {
		kind = KindNet
	}
	return Token{
		Raw:    text[m[0]:m[1]],
		Name:   text[m[4]:m[5]],
		Kind:   kind,
		Syntax: SyntaxExplicit,
		Span:   Span{Start: m[0], End: m[1]},
	}
}

func scanShorthand(text string, offset int) (Token, bool) {
	for _, m := range shorthandPattern.FindAllStringSubmatchIndex(text, -1) {
		tok, ok := shorthandToken(text, m)
		if ok && tok.Span.Contains(offset) {
			return tok, true
		}
	}
	return Token{}, false
}

func shorthandToken(text string, m []int) (Token, bool) {
	// Reject e-mail-style hits: the @ must start a token, not join two
	// name runs (user@host).
	if m[0] > 0 && isNameChar(text[m[0]-1]) {
		return Token{}, false
	}
	return Token{
		Raw:    text[m[0]:m[1]],
		Name:   text[m[2]:m[3]],
		Kind:   KindUnknown,
		Syntax: SyntaxShorthand,
		Span:   Span{Start: m[0], End: m[1]},
	}, true
}

func scanBare(cfg ScanConfig, text string, offset int) (Token, bool) {
	for _, m := range barePattern.FindAllStringIndex(text, -1) {
		tok, ok := bareToken(cfg, text, m[0], m[1])
		if ok && tok.Span.Contains(offset) {
			return tok, true
		}
	}
	return Token{}, false
}

func bareToken(cfg ScanConfig, text string, start, end int) (Token, bool) {
	// Must stand alone: neighbours outside the name charset.
	if start > 0 && isNameChar(text[start-1]) {
		return Token{}, false
	}
	if end < len(text) && isNameChar(text[end]) {
		return Token{}, false
	}

	raw := text[start:end]
	if !cfg.allowsDesignator(raw) {
		return Token{}, false
	}

	// Bare grammar only ever names components; bare net names would
	// false-positive on ordinary words.
	return Token{
		Raw:    raw,
		Name:   raw,
		Kind:   KindComponent,
		Syntax: SyntaxBare,
		Span:   Span{Start: start, End: end},
	}, true
}

func (cfg ScanConfig) allowsDesignator(raw string) bool {
	if len(cfg.DesignatorPrefixes) == 0 {
		return true
	}
	i := 0
	for i < len(raw) && !(raw[i] >= '0' && raw[i] <= '9') {
		i++
	}
	prefix := strings.ToUpper(raw[:i])
	for _, p := range cfg.DesignatorPrefixes {
		if prefix == strings.ToUpper(p) {
			return true
		}
	}
	return false
}

package lang

import (
	"strconv"
	"strings"
)

// Kind classifies a [Segment].
type Kind int

const (
	KindLiteral Kind = iota // literal
	KindCommand             // command
	KindEnvVar              // env
	KindStyle               // style
)

// Directive sigils.
const (
	SigilEnvVar  = '$'
	SigilStyle   = '@'
	SigilCommand = '#'
)

var kindName = [...]string{
	KindLiteral: "literal",
	KindCommand: "command",
	KindEnvVar:  "env",
	KindStyle:   "style",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindName) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindName[k]
}

// ParseKind returns the Kind named s, or false if s names no kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindName {
		if strings.EqualFold(s, name) {
			return Kind(k), true
		}
	}

	return KindLiteral, false
}

// classify returns the directive kind selected by the first byte of raw.
// A raw text without a recognized sigil is a command line.
func classify(raw string) Kind {
	if raw == "" {
		return KindCommand
	}

	switch raw[0] {
	case SigilEnvVar:
		return KindEnvVar
	case SigilStyle:
		return KindStyle
	default:
		return KindCommand
	}
}

// Segment is a unit of parsed template output: either literal text or a
// directive to be substituted.
type Segment struct {
	Kind Kind
	// Raw is the literal text for KindLiteral, or the unescaped directive
	// text between the braces (sigil included) for every other kind.
	Raw string
	Pos Position
}

// Literal returns a literal segment.
func Literal(text string) Segment {
	return Segment{Kind: KindLiteral, Raw: text}
}

// Directive returns a directive segment classified from raw.
func Directive(raw string) Segment {
	return Segment{Kind: classify(raw), Raw: raw}
}

// IsDirective reports whether s is substituted when rendered.
func (s Segment) IsDirective() bool { return s.Kind != KindLiteral }

// Body returns the directive text with its sigil removed.
//
// The optional '#' command marker is also removed, so both "{uname -r}" and
// "{#uname -r}" run the same command line. Literal segments return Raw.
func (s Segment) Body() string {
	switch s.Kind {
	case KindEnvVar, KindStyle:
		return s.Raw[1:]
	case KindCommand:
		if strings.HasPrefix(s.Raw, string(SigilCommand)) {
			return s.Raw[1:]
		}
	}

	return s.Raw
}

// Source returns s as it would appear in a template, with braces and
// escapes restored.
func (s Segment) Source() string {
	if s.Kind == KindLiteral {
		return escape(s.Raw)
	}

	return "{" + escape(s.Raw) + "}"
}

// Equal reports whether s and o have the same kind and text. Positions are
// not compared.
func (s Segment) Equal(o Segment) bool {
	return s.Kind == o.Kind && s.Raw == o.Raw
}

// escape re-escapes text so that parsing it yields text again.
func escape(text string) string {
	var sb strings.Builder

	sb.Grow(len(text))

	for _, ch := range []byte(text) {
		if ch == '{' || ch == '}' || ch == '\\' {
			sb.WriteByte('\\')
		}

		sb.WriteByte(ch)
	}

	return sb.String()
}

package lang

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/ardnew/yaf/log"
)

// ParseReader parses a [Template] from an io.Reader.
func ParseReader(ctx context.Context, r io.Reader) (*Template, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return Parse(ctx, string(data))
}

// Parse converts template source into an ordered sequence of segments.
//
// Text outside braces is literal. A span "{...}" is a directive, classified
// by its first character: '$' reads an environment variable, '@' selects a
// style, and anything else is a shell command line. The pairs `\{`, `\}`,
// and `\\` produce a literal brace or backslash both inside and outside
// directives. Any other backslash is kept as written.
func Parse(ctx context.Context, s string) (*Template, error) {
	p := &parser{
		input: s,
		line:  1,
		col:   1,
	}

	tmpl, err := p.parse()
	if err != nil {
		log.DebugContext(ctx, "parse failed", slog.Any("error", err))

		return nil, err
	}

	log.TraceContext(ctx, "parse complete",
		slog.Int("segment_count", tmpl.Len()),
		slog.Int("directive_count", tmpl.Directives()))

	return tmpl, nil
}

// parser holds the parser state.
type parser struct {
	input string
	pos   int
	line  int
	col   int

	buf   []byte   // accumulated text of the current segment
	start Position // position of the first byte of buf or of the open brace
}

func (p *parser) parse() (*Template, error) {
	tmpl := new(Template)

	inside := false // within "{...}"

	for !p.eof() {
		ch := p.peek()

		if ch == '\\' {
			if next, ok := p.escaped(); ok {
				p.emit(next, 2)

				continue
			}

			if inside && p.pos+1 < len(p.input) {
				// Unknown pairs are kept verbatim inside a directive.
				p.emit('\\', 1)
				p.emitRune()

				continue
			}

			p.emit('\\', 1)

			continue
		}

		switch ch {
		case '{':
			if inside {
				return nil, ErrUnexpectedBrace.WithPosition(p.position()).
					With(slog.String("directive", "{"+string(p.buf)))
			}

			if len(p.buf) > 0 {
				tmpl.Segments = append(tmpl.Segments, p.flush(KindLiteral))
			}

			p.start = p.position()
			p.advance()

			inside = true

		case '}':
			if !inside {
				return nil, ErrUnexpectedBrace.WithPosition(p.position())
			}

			p.advance()

			tmpl.Segments = append(tmpl.Segments, p.flush(KindCommand))
			inside = false

		default:
			p.emitRune()
		}
	}

	if inside {
		return nil, ErrUnterminatedDirective.WithPosition(p.start).
			With(slog.String("directive", "{"+string(p.buf)))
	}

	if len(p.buf) > 0 {
		tmpl.Segments = append(tmpl.Segments, p.flush(KindLiteral))
	}

	return tmpl, nil
}

// escaped returns the character denoted by the escape pair at the current
// position, if any.
func (p *parser) escaped() (byte, bool) {
	if p.pos+1 >= len(p.input) {
		return 0, false
	}

	switch next := p.input[p.pos+1]; next {
	case '{', '}', '\\':
		return next, true
	}

	return 0, false
}

// emit appends ch to the accumulator and consumes n input bytes.
func (p *parser) emit(ch byte, n int) {
	p.mark()
	p.buf = append(p.buf, ch)

	for range n {
		p.advance()
	}
}

// emitRune appends the rune at the current position to the accumulator.
func (p *parser) emitRune() {
	p.mark()

	_, size := utf8.DecodeRuneInString(p.input[p.pos:])
	p.buf = append(p.buf, p.input[p.pos:p.pos+size]...)
	p.advance()
}

// mark records the start of a literal run.
func (p *parser) mark() {
	if len(p.buf) == 0 && p.start.Line == 0 {
		p.start = p.position()
	}
}

// flush returns the accumulated text as a segment and resets the
// accumulator. Directive segments are classified by their sigil.
func (p *parser) flush(kind Kind) Segment {
	raw := string(p.buf)

	seg := Segment{Kind: KindLiteral, Raw: raw, Pos: p.start}
	if kind != KindLiteral {
		seg.Kind = classify(raw)
	}

	p.buf = p.buf[:0]
	p.start = Position{}

	return seg
}

// Helper methods

func (p *parser) peek() byte {
	return p.input[p.pos]
}

func (p *parser) advance() {
	if p.eof() {
		return
	}

	r, size := utf8.DecodeRuneInString(p.input[p.pos:])

	p.pos += size
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) position() Position {
	return Position{
		Offset: p.pos,
		Line:   p.line,
		Column: p.col,
	}
}

package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/yaf/lang"
	"github.com/ardnew/yaf/log"
)

// Predefined errors (sentinel values).
var (
	ErrUnknownStyle = lang.NewError("unknown style")
	ErrExecute      = lang.NewError("failed to execute command")
	ErrWriteOutput  = lang.NewError("failed to write output")
)

// LookupFunc resolves a name to a value, reporting whether it was found.
// [os.LookupEnv] is a LookupFunc.
type LookupFunc func(name string) (string, bool)

// Renderer resolves the directives of a [lang.Template] and concatenates the
// results with its literal text.
//
// Directives are resolved strictly in template order, one at a time. A
// Renderer holds no state between calls to [Renderer.Render].
type Renderer struct {
	exec  Executor
	env   LookupFunc
	facts LookupFunc
	color bool
}

// Option configures a [Renderer].
type Option func(Renderer) Renderer

// WithExecutor sets the executor used for command directives.
func WithExecutor(e Executor) Option {
	return func(r Renderer) Renderer {
		if e != nil {
			r.exec = e
		}

		return r
	}
}

// WithLookupEnv sets the function used for environment variable directives.
func WithLookupEnv(fn LookupFunc) Option {
	return func(r Renderer) Renderer {
		if fn != nil {
			r.env = fn
		}

		return r
	}
}

// WithFacts sets the function consulted for "@name" directives before the
// style table.
func WithFacts(fn LookupFunc) Option {
	return func(r Renderer) Renderer {
		r.facts = fn

		return r
	}
}

// WithColor controls whether style directives emit escape sequences.
// With color disabled, style names are still validated but resolve to
// empty strings.
func WithColor(enable bool) Option {
	return func(r Renderer) Renderer {
		r.color = enable

		return r
	}
}

// New returns a Renderer that runs commands with [Shell], reads the process
// environment, emits color, and has no facts, unless overridden by opts.
func New(opts ...Option) *Renderer {
	r := Renderer{
		exec:  Shell{},
		env:   os.LookupEnv,
		color: true,
	}

	for _, opt := range opts {
		r = opt(r)
	}

	return &r
}

// Render returns the rendered text of tmpl.
//
// Rendering stops at the first style directive naming an unknown style; no
// partial output is returned. Command failures and unset environment
// variables render as empty strings.
func (r *Renderer) Render(ctx context.Context, tmpl *lang.Template) (string, error) {
	var sb strings.Builder

	for seg := range tmpl.All() {
		s, err := r.resolve(ctx, seg)
		if err != nil {
			return "", err
		}

		sb.WriteString(s)
	}

	return sb.String(), nil
}

// RenderTo renders tmpl and writes the result to w.
// Nothing is written if rendering fails.
func (r *Renderer) RenderTo(ctx context.Context, w io.Writer, tmpl *lang.Template) error {
	out, err := r.Render(ctx, tmpl)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

func (r *Renderer) resolve(ctx context.Context, seg lang.Segment) (string, error) {
	switch seg.Kind {
	case lang.KindLiteral:
		return seg.Raw, nil
	case lang.KindEnvVar:
		return r.lookupEnv(seg.Body()), nil
	case lang.KindStyle:
		return r.style(seg)
	default:
		return r.command(ctx, seg.Body(), seg.Pos), nil
	}
}

func (r *Renderer) lookupEnv(name string) string {
	if name == "" {
		return ""
	}

	val, _ := r.env(name)

	return val
}

func (r *Renderer) style(seg lang.Segment) (string, error) {
	name := seg.Body()

	if r.facts != nil {
		if val, ok := r.facts(name); ok {
			return val, nil
		}
	}

	esc, ok := Style(name)
	if !ok {
		err := ErrUnknownStyle.WithPosition(seg.Pos).
			With(slog.String("directive", seg.Source()))

		hint := suggest(name)
		if hint == "" {
			return "", err.Wrap(fmt.Errorf("%q", name))
		}

		return "", err.
			With(slog.String("suggestion", hint)).
			Wrap(fmt.Errorf("%q (did you mean %q?)", name, hint))
	}

	if !r.color {
		return "", nil
	}

	return esc, nil
}

// command runs line and returns its output with one trailing line
// terminator removed. Any failure renders as an empty string.
func (r *Renderer) command(ctx context.Context, line string, pos lang.Position) string {
	if strings.TrimSpace(line) == "" {
		return ""
	}

	attrs := func(extra ...slog.Attr) []slog.Attr {
		return append([]slog.Attr{
			slog.String("command", line),
			slog.Int("line", pos.Line),
			slog.Int("column", pos.Column),
		}, extra...)
	}

	res, err := r.exec.Execute(ctx, line)
	if err != nil {
		log.DebugContext(ctx, "command failed to run",
			attrs(slog.Any("error", err))...)

		return ""
	}

	if len(res.Stderr) > 0 {
		log.DebugContext(ctx, "command wrote to stderr",
			attrs(slog.String("stderr", strings.TrimSpace(string(res.Stderr))))...)
	}

	if res.ExitCode != 0 {
		log.DebugContext(ctx, "command exited non-zero",
			attrs(slog.Int("exit_code", res.ExitCode))...)

		return ""
	}

	if !utf8.Valid(res.Stdout) {
		log.DebugContext(ctx, "command output is not UTF-8", attrs()...)

		return ""
	}

	return trimLineEnd(string(res.Stdout))
}

// trimLineEnd removes a single trailing "\n" or "\r\n" from s.
func trimLineEnd(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}

	return strings.TrimSuffix(s, "\n")
}

// suggest returns the closest known style name to name, or "" if nothing is
// close.
func suggest(name string) string {
	if name == "" {
		return ""
	}

	matches := fuzzy.Find(name, StyleNames())
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}

package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/muesli/termenv"

	"github.com/ardnew/yaf/lang"
	"github.com/ardnew/yaf/log"
	"github.com/ardnew/yaf/pkg"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the output writer of the kong application in ctx, or
// [os.Stdout] if there is none.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// Color selects when style directives emit escape codes.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// Enabled reports whether output written to w should be styled.
// In auto mode, w must be a terminal whose environment permits color
// (NO_COLOR and CLICOLOR_FORCE are honored).
func (c Color) Enabled(w io.Writer) bool {
	switch c {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
	}
}

// Settings holds the global flags shared by the subcommands.
type Settings struct {
	Color   Color
	Shell   string
	Timeout time.Duration
}

type settingsKey struct{}

// WithSettings returns a new context.Context containing s.
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

func settingsFrom(ctx context.Context) Settings {
	s, _ := ctx.Value(settingsKey{}).(Settings)

	return s
}

// loadTemplate parses the template at path. A missing file falls back to
// the builtin template.
func loadTemplate(ctx context.Context, path string) (*lang.Template, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WarnContext(ctx, "using builtin config", slog.String("path", path))

		return lang.Parse(ctx, pkg.Builtin)
	}

	if err != nil {
		return nil, ErrReadConfig.
			With(slog.String("file", path)).
			Wrap(err)
	}
	defer file.Close()

	tmpl, err := lang.ParseReader(ctx, file)
	if err != nil {
		return nil, lang.WrapError(err).
			With(slog.String("file", path))
	}

	return tmpl, nil
}

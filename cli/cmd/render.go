package cmd

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/yaf/fetch"
	"github.com/ardnew/yaf/lang"
	"github.com/ardnew/yaf/log"
	"github.com/ardnew/yaf/render"
)

// Render prints the rendered template.
type Render struct {
	Config string `arg:"" default:"${config}" help:"Template file; the builtin template is used if it does not exist." optional:"" type:"path"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	out := stdout(ctx)
	set := settingsFrom(ctx)
	color := set.Color.Enabled(out)

	// Leave the terminal unstyled even if the template never resets.
	if color {
		defer func() {
			_, _ = io.WriteString(out, render.Reset)
		}()
	}

	tmpl, err := loadTemplate(ctx, r.Config)
	if err != nil {
		return err
	}

	rd := render.New(
		render.WithExecutor(render.Shell{Path: set.Shell, Timeout: set.Timeout}),
		render.WithFacts(fetch.Source{}.Lookup),
		render.WithColor(color),
	)

	text, err := rd.Render(ctx, tmpl)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("file", r.Config))
	}

	// Every template line ends with a newline, including the last.
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	_, err = io.WriteString(out, text)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	log.DebugContext(ctx, "rendered template",
		slog.String("file", r.Config),
		slog.Int("segments", tmpl.Len()),
		slog.Int("directives", tmpl.Directives()),
	)

	return nil
}

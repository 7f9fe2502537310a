package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/yaf/lang"
)

// Parse prints the segments of a template without running anything.
type Parse struct {
	Format string `default:"text" enum:"text,json,yaml" help:"Output format (${enum})." short:"f"`
	Indent int    `default:"2"                          help:"Indent width for JSON and YAML output." short:"i"`

	Config string `arg:"" default:"${config}" help:"Template file; the builtin template is used if it does not exist." optional:"" type:"path"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	tmpl, err := loadTemplate(ctx, p.Config)
	if err != nil {
		return err
	}

	out := stdout(ctx)

	switch p.Format {
	case "json":
		return p.writeJSON(out, tmpl)
	case "yaml":
		return p.writeYAML(ctx, out, tmpl)
	default:
		return writeText(out, tmpl)
	}
}

func (p *Parse) writeJSON(w io.Writer, tmpl *lang.Template) error {
	enc := json.NewEncoder(w)
	if p.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", p.Indent))
	}

	err := enc.Encode(tmpl)
	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	return nil
}

func (p *Parse) writeYAML(
	ctx context.Context,
	w io.Writer,
	tmpl *lang.Template,
) error {
	var opts []yaml.EncodeOption
	if p.Indent > 0 {
		opts = append(opts, yaml.Indent(p.Indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, tmpl, opts...)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = w.Write(data)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// writeText prints one segment per line as "line:column kind source".
func writeText(w io.Writer, tmpl *lang.Template) error {
	for seg := range tmpl.All() {
		_, err := fmt.Fprintf(w, "%d:%d\t%-7s\t%q\n",
			seg.Pos.Line, seg.Pos.Column, seg.Kind, seg.Source())
		if err != nil {
			return ErrWriteOutput.
				With(slog.String("format", "text")).
				Wrap(err)
		}
	}

	return nil
}

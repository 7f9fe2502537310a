package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ardnew/yaf/fetch"
	"github.com/ardnew/yaf/render"
)

const (
	// colorColumns is the number of color previews per row.
	colorColumns = 8
	nameWidth    = 12
)

// Styles lists the names usable with the "@" sigil.
type Styles struct {
	Facts bool `default:"true" help:"Include built-in facts and their current values." negatable:""`
}

// Run executes the styles command.
func (s *Styles) Run(ctx context.Context) error {
	out := stdout(ctx)
	color := settingsFrom(ctx).Color.Enabled(out)

	lr := lipgloss.NewRenderer(out)
	if color {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	heading := lr.NewStyle().Bold(true).Underline(true).MarginTop(1)
	cell := lr.NewStyle().Width(nameWidth)

	preview := func(name string) string {
		text := cell.Render("@" + name)
		if !color {
			return text
		}

		esc, _ := render.Style(name)

		return esc + text + render.Reset
	}

	var attrs, colors []string

	var row []string

	for _, name := range render.StyleNames() {
		if !strings.HasPrefix(name, "color") {
			attrs = append(attrs, preview(name))

			continue
		}

		row = append(row, preview(name))
		if len(row) == colorColumns {
			colors = append(colors, strings.Join(row, ""))
			row = row[:0]
		}
	}

	if len(row) > 0 {
		colors = append(colors, strings.Join(row, ""))
	}

	sections := []string{
		heading.Render("Styles"),
		strings.Join(attrs, "\n"),
		heading.Render("Colors"),
		strings.Join(colors, "\n"),
	}

	if s.Facts {
		var src fetch.Source

		facts := make([]string, 0, len(fetch.Names()))
		for _, name := range fetch.Names() {
			val, _ := src.Lookup(name)
			facts = append(facts, cell.Render("@"+name)+val)
		}

		sections = append(sections,
			heading.Render("Facts"),
			strings.Join(facts, "\n"),
		)
	}

	_, err := io.WriteString(out,
		lipgloss.JoinVertical(lipgloss.Left, sections...)+"\n")
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

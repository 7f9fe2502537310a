package render

import (
	"slices"
	"strconv"
	"sync"
)

// Number of addressable terminal colors, "color0" through "color255".
// The first 16 are the standard and bright palette.
const numColors = 256

// Style escape sequences.
const (
	escBold      = "\x1b[1m"
	escItalic    = "\x1b[3m"
	escUnderline = "\x1b[4m"
	escReset     = "\x1b[0m"
)

// Reset is the escape sequence that restores default terminal attributes.
const Reset = escReset

// colorEscape returns the 256-color foreground escape sequence for n.
func colorEscape(n int) string {
	return "\x1b[38;5;" + strconv.Itoa(n) + "m"
}

// styleTable maps every style name to its escape sequence.
// It is built once and never modified.
var styleTable = sync.OnceValue(
	func() map[string]string {
		m := map[string]string{
			"bold":      escBold,
			"italic":    escItalic,
			"underline": escUnderline,
			"reset":     escReset,
		}

		for n := range numColors {
			m["color"+strconv.Itoa(n)] = colorEscape(n)
		}

		return m
	},
)

// styleNames lists style names: attributes first, then colors in numeric
// order.
var styleNames = sync.OnceValue(
	func() []string {
		names := []string{"bold", "italic", "underline", "reset"}
		for n := range numColors {
			names = append(names, "color"+strconv.Itoa(n))
		}

		return names
	},
)

// Style returns the escape sequence for the named style.
func Style(name string) (string, bool) {
	esc, ok := styleTable()[name]

	return esc, ok
}

// StyleNames returns the names of all styles, attributes first and colors
// in numeric order. The returned slice is a copy.
func StyleNames() []string {
	return slices.Clone(styleNames())
}

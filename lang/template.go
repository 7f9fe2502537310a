package lang

import (
	"iter"
	"slices"
	"strings"
)

// Template is the ordered sequence of segments parsed from template source.
type Template struct {
	Segments []Segment `json:"segments" yaml:"segments"`
}

// Len returns the number of segments in t.
func (t *Template) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Segments)
}

// All returns an iterator over the segments of t in source order.
func (t *Template) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if t == nil {
			return
		}

		for _, s := range t.Segments {
			if !yield(s) {
				return
			}
		}
	}
}

// Directives returns the number of directive segments in t.
func (t *Template) Directives() int {
	n := 0

	for s := range t.All() {
		if s.IsDirective() {
			n++
		}
	}

	return n
}

// Equal reports whether t and o contain equal segments in the same order.
func (t *Template) Equal(o *Template) bool {
	var a, b []Segment
	if t != nil {
		a = t.Segments
	}

	if o != nil {
		b = o.Segments
	}

	return slices.EqualFunc(a, b, Segment.Equal)
}

// String returns template source that parses back to t.
func (t *Template) String() string {
	var sb strings.Builder

	for s := range t.All() {
		sb.WriteString(s.Source())
	}

	return sb.String()
}

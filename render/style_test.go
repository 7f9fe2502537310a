package render

import (
	"slices"
	"testing"
)

func TestStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"bold", "\x1b[1m", true},
		{"italic", "\x1b[3m", true},
		{"underline", "\x1b[4m", true},
		{"reset", "\x1b[0m", true},
		{"color0", "\x1b[38;5;0m", true},
		{"color7", "\x1b[38;5;7m", true},
		{"color15", "\x1b[38;5;15m", true},
		{"color196", "\x1b[38;5;196m", true},
		{"color256", "", false},
		{"color-1", "", false},
		{"color01", "", false},
		{"Bold", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Style(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Style(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	if len(names) != 4+numColors {
		t.Fatalf("len(StyleNames()) = %d", len(names))
	}

	if names[0] != "bold" || names[4] != "color0" || names[len(names)-1] != "color255" {
		t.Errorf("unexpected order: %v ... %v", names[:5], names[len(names)-1])
	}

	for _, name := range names {
		if _, ok := Style(name); !ok {
			t.Errorf("StyleNames() includes unknown %q", name)
		}
	}

	names[0] = "mutated"
	if !slices.Contains(StyleNames(), "bold") {
		t.Error("StyleNames() shares its backing array")
	}
}

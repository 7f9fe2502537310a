package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
)

// testCLI mirrors the command tree registered by the cli package.
type testCLI struct {
	Render Render `cmd:"" default:"withargs"`
	Parse  Parse  `cmd:""`
	Styles Styles `cmd:""`
	Init   Init   `cmd:""`
}

// run parses args against testCLI and runs the selected command, returning
// everything written to the application's stdout.
func run(t *testing.T, set Settings, config string, args ...string) (string, error) {
	t.Helper()

	var (
		out bytes.Buffer
		cli testCLI
	)

	ctx := t.Context()

	parser, err := kong.New(&cli,
		kong.Writers(&out, io.Discard),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit(%d)", code) }),
		kong.Vars{ConfigIdentifier: config},
		kong.BindSingletonProvider(func() context.Context { return ctx }),
	)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}

	ctx = WithSettings(WithContext(ctx, ktx), set)

	err = ktx.Run()

	return out.String(), err
}

// writeConfig writes content to a template file in a new temp directory.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "yaf.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	tests := []struct {
		color Color
		want  bool
	}{
		{ColorAlways, true},
		{ColorNever, false},
		{ColorAuto, false}, // not a terminal
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.color.Enabled(&buf); got != tt.want {
			t.Errorf("Color(%q).Enabled(buffer) = %v, want %v", tt.color, got, tt.want)
		}
	}
}

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "a{@bold}b")

	tmpl, err := loadTemplate(t.Context(), path)
	if err != nil {
		t.Fatal(err)
	}

	if tmpl.Len() != 3 || tmpl.Directives() != 1 {
		t.Errorf("loadTemplate() = %v", tmpl)
	}
}

func TestLoadTemplate_Missing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.conf")

	tmpl, err := loadTemplate(t.Context(), path)
	if err != nil {
		t.Fatal(err)
	}

	if tmpl.Directives() == 0 {
		t.Error("missing config did not fall back to the builtin template")
	}
}

func TestLoadTemplate_Unreadable(t *testing.T) {
	t.Parallel()

	// A directory cannot be read as a template.
	_, err := loadTemplate(t.Context(), t.TempDir())
	if err == nil {
		t.Fatal("expected error reading a directory")
	}
}

func TestSettingsFrom(t *testing.T) {
	t.Parallel()

	if s := settingsFrom(t.Context()); s != (Settings{}) {
		t.Errorf("settingsFrom(empty) = %+v", s)
	}

	want := Settings{Color: ColorNever, Shell: "/bin/bash"}
	if s := settingsFrom(WithSettings(t.Context(), want)); s != want {
		t.Errorf("settingsFrom() = %+v, want %+v", s, want)
	}
}

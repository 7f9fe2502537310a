package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/ardnew/yaf/cli/cmd"
	"github.com/ardnew/yaf/lang"
	"github.com/ardnew/yaf/log"
)

// captureLog redirects the default logger to a plain text buffer for the
// duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	log.Config(
		log.WithOutput(&buf),
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelWarn),
	)
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	return &buf
}

func TestReport_RunErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "unknown_style",
			content: "x{@bld}",
			want: []string{
				`error.error="unknown style"`, "error.line=1", "error.column=2",
				"error.directive={@bld}", "error.suggestion=bold", "error.file=",
			},
		},
		{
			name:    "unterminated",
			content: "x{oops",
			want: []string{
				`error.error="unterminated directive"`, "error.column=2",
				"error.directive={oops", "error.file=",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemplate(t, tt.content)

			_, _, err := runCLI(t, "--color=never", path)
			if err == nil {
				t.Fatal("expected error")
			}

			buf := captureLog(t)
			Report(t.Context(), err)

			line := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(line, want) {
					t.Errorf("log line %q missing %q", line, want)
				}
			}
		})
	}
}

func TestStructured(t *testing.T) {
	lerr := lang.ErrUnexpectedBrace.WithPosition(lang.Position{Line: 1, Column: 1})
	cerr := cmd.ErrReadConfig.Wrap(os.ErrPermission)
	plain := errors.New("plain")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"lang_joined", errors.Join(lerr), lerr},
		{"lang_wrapped", fmt.Errorf("run: %w", lerr), lerr},
		{"cmd_joined", errors.Join(cerr), cerr},
		{"plain", plain, plain},
	}

	for _, tt := range tests {
		if got := structured(tt.err); got != tt.want {
			t.Errorf("%s: structured() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

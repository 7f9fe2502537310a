package render

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"
)

func requireShell(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(DefaultShell); err != nil {
		t.Skipf("%s not available: %v", DefaultShell, err)
	}
}

func TestShell_Execute(t *testing.T) {
	t.Parallel()
	requireShell(t)

	tests := []struct {
		name     string
		command  string
		stdout   string
		stderr   string
		exitCode int
	}{
		{"stdout", "echo hello", "hello\n", "", 0},
		{"stderr", "echo oops >&2", "", "oops\n", 0},
		{"exit status", "exit 3", "", "", 3},
		{"pipeline", "printf 'a b c' | wc -w | tr -d ' '", "3\n", "", 0},
		{"no stdin", "cat", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := Shell{}.Execute(context.Background(), tt.command)
			if err != nil {
				t.Fatalf("Execute(%q) error = %v", tt.command, err)
			}

			if string(res.Stdout) != tt.stdout {
				t.Errorf("stdout = %q, want %q", res.Stdout, tt.stdout)
			}

			if string(res.Stderr) != tt.stderr {
				t.Errorf("stderr = %q, want %q", res.Stderr, tt.stderr)
			}

			if res.ExitCode != tt.exitCode {
				t.Errorf("exit code = %d, want %d", res.ExitCode, tt.exitCode)
			}
		})
	}
}

func TestShell_Execute_MissingShell(t *testing.T) {
	t.Parallel()

	_, err := Shell{Path: "/nonexistent/shell"}.Execute(context.Background(), "true")
	if !errors.Is(err, ErrExecute) {
		t.Errorf("Execute() error = %v, want %v", err, ErrExecute)
	}
}

func TestShell_Execute_Timeout(t *testing.T) {
	t.Parallel()
	requireShell(t)

	start := time.Now()

	res, err := Shell{Timeout: 50 * time.Millisecond}.Execute(context.Background(), "sleep 5")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if res.ExitCode == 0 {
		t.Error("timed out command reported success")
	}

	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("timeout not enforced, took %v", elapsed)
	}
}

func TestExecutorFunc(t *testing.T) {
	t.Parallel()

	var got string

	e := ExecutorFunc(func(_ context.Context, command string) (Result, error) {
		got = command

		return Result{Stdout: []byte("ok")}, nil
	})

	r := New(WithExecutor(e))

	out, err := r.Render(context.Background(), mustParse(t, "{date +%s}"))
	if err != nil {
		t.Fatal(err)
	}

	if got != "date +%s" || out != "ok" {
		t.Errorf("ran %q, rendered %q", got, out)
	}
}

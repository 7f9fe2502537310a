package render

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// DefaultShell is the shell used to run command directives.
const DefaultShell = "/bin/sh"

// waitDelay bounds how long a canceled command's output pipes may stay
// open, e.g. when a background child of the shell inherited them.
const waitDelay = 100 * time.Millisecond

// Result is the outcome of running one command line.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Executor runs command lines on behalf of a [Renderer].
//
// Execute returns an error only when the command could not be run at all.
// A command that ran and exited non-zero is reported through
// [Result.ExitCode].
type Executor interface {
	Execute(ctx context.Context, command string) (Result, error)
}

// ExecutorFunc adapts an ordinary function to the [Executor] interface.
type ExecutorFunc func(ctx context.Context, command string) (Result, error)

// Execute calls f(ctx, command).
func (f ExecutorFunc) Execute(ctx context.Context, command string) (Result, error) {
	return f(ctx, command)
}

// Shell runs each command line with "<Path> -c <command>".
// Standard input is empty, and standard output and error are captured.
type Shell struct {
	// Path is the shell executable. Empty means [DefaultShell].
	Path string
	// Timeout bounds each command. Zero or negative means no limit.
	Timeout time.Duration
}

// Execute implements [Executor].
func (s Shell) Execute(ctx context.Context, command string) (Result, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	path := s.Path
	if path == "" {
		path = DefaultShell
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path, "-c", command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()

	res := Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()

		return res, nil
	}

	if err != nil {
		return res, ErrExecute.Wrap(err)
	}

	return res, nil
}

// Package execx provides a stub-friendly interface for running external
// commands (git, npm). Production code takes a Runner so tests can substitute
// a fake without touching the real filesystem or network.
package execx

import (
	"bytes"
	"context"
	"os/exec"
)

// Result holds the outcome of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Opts holds optional parameters for command execution.
type Opts struct {
	Dir string // working directory (optional)
}

// Runner is the interface for running external commands.
type Runner interface {
	// Run executes a command and returns the result.
	// Returns Result with ExitCode set if the process exits, even non-zero.
	// Returns error only for execution failures (binary not found, ctx
	// canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts Opts) (Result, error)

	// LookPath reports whether the named binary is on PATH.
	LookPath(name string) bool
}

// RealRunner is the production implementation backed by os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command and captures stdout/stderr.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts Opts) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		// Process ran but exited non-zero.
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// Binary not found, ctx canceled, etc.
		return result, err
	}

	return result, nil
}

// LookPath reports whether name resolves on PATH.
func (r *RealRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

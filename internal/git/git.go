// Package git bootstraps version control in freshly created projects via the
// execx command abstraction. Everything here is best-effort: a machine
// without git gets a working project and a warning, never a failed run.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/frontforge-labs/frontforge/internal/execx"
)

// InitialCommitMessage is used for the bootstrap commit.
const InitialCommitMessage = "Initial project scaffold"

// Bootstrap initializes a repository in dir, stages everything, and creates
// the initial commit. Any failure is returned for the caller to downgrade to
// a warning; the target directory is left as-is.
func Bootstrap(ctx context.Context, runner execx.Runner, dir string) error {
	if !runner.LookPath("git") {
		return fmt.Errorf("git not found on PATH")
	}

	commands := [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", InitialCommitMessage},
	}

	for _, args := range commands {
		result, err := runner.Run(ctx, "git", args, execx.Opts{Dir: dir})
		if err != nil {
			return fmt.Errorf("running git %s: %w", args[0], err)
		}
		if result.ExitCode != 0 {
			detail := strings.TrimSpace(result.Stderr)
			if detail == "" {
				detail = strings.TrimSpace(result.Stdout)
			}
			return fmt.Errorf("git %s exited %d: %s", args[0], result.ExitCode, detail)
		}
	}
	return nil
}

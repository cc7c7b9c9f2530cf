// Package installer invokes the host package manager. The tool's
// responsibility ends at producing a correct manifest and issuing the
// install command: installer output is not parsed, failures are not retried,
// and the exit status surfaces as a single success or failure line upstream.
package installer

import (
	"context"
	"fmt"
	"strings"

	"github.com/frontforge-labs/frontforge/internal/execx"
)

// ErrSkipped reports that no package manager was found; the caller downgrades
// this to a warning rather than failing the run.
type ErrSkipped struct {
	Reason string
}

func (e *ErrSkipped) Error() string { return e.Reason }

// InstallDev runs `<pm> install --save-dev <pkgs...>` in dir. pm defaults to
// npm when empty. The subprocess blocks until it exits.
func InstallDev(ctx context.Context, runner execx.Runner, pm, dir string, pkgs []string) error {
	if pm == "" {
		pm = "npm"
	}
	if len(pkgs) == 0 {
		return nil
	}

	if !runner.LookPath(pm) {
		return &ErrSkipped{Reason: fmt.Sprintf("%s not found on PATH, skipping dependency installation", pm)}
	}

	args := append([]string{"install", "--save-dev"}, pkgs...)
	result, err := runner.Run(ctx, pm, args, execx.Opts{Dir: dir})
	if err != nil {
		return fmt.Errorf("running %s install: %w", pm, err)
	}
	if result.ExitCode != 0 {
		detail := strings.TrimSpace(result.Stderr)
		return fmt.Errorf("%s install exited %d: %s", pm, result.ExitCode, detail)
	}
	return nil
}

// DevPackages is the tooling set the setup flow installs alongside the
// script entries it adds to the manifest.
var DevPackages = []string{
	"eslint",
	"eslint-config-prettier",
	"eslint-plugin-jsx-a11y",
	"eslint-plugin-react",
	"eslint-plugin-react-hooks",
	"@typescript-eslint/eslint-plugin",
	"@typescript-eslint/parser",
	"prettier",
	"stylelint",
	"stylelint-config-standard",
	"typescript",
	"husky",
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/frontforge-labs/frontforge/internal/branding"
	"github.com/frontforge-labs/frontforge/internal/config"
	"github.com/frontforge-labs/frontforge/internal/installer"
	"github.com/frontforge-labs/frontforge/internal/manifest"
	"github.com/frontforge-labs/frontforge/internal/steps"
)

func init() {
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup [dir]",
	Short: "Apply the standards bundle to an existing project",
	Long: `Copy the standards documents and lint/format/type-check configuration
into an existing project, add the standard script entries to its
package.json, and install the supporting dev dependencies.

The target directory must already exist and contain a package.json.

Example:
  ` + branding.CLIName() + ` setup ./my-app`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runSetup(dir)
	},
}

func runSetup(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("target directory %s does not exist", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	out := newConsole()
	runner := newRunner()
	driver := &steps.Driver{Console: out}

	// Document and config copies deliberately run before the manifest check:
	// a project without a package.json still receives the standards bundle,
	// only the script and dependency wiring is refused.
	list := []steps.Step{
		{Name: "Copy standards documents", Run: func() steps.Result {
			return copyStandards(out, dir)
		}},
		{Name: "Write configuration files", Run: func() steps.Result {
			return emitConfigs(out, dir)
		}},
		{Name: "Update package.json scripts", Run: func() steps.Result {
			if err := manifest.UpdateScripts(dir, manifest.StandardScripts); err != nil {
				return steps.Fatalf("%v", err)
			}
			warnManifestIssues(out, filepath.Join(dir, manifest.FileName))
			return steps.Okf("%d script entries", len(manifest.StandardScripts))
		}},
		{Name: "Install dev dependencies", Run: func() steps.Result {
			err := installer.InstallDev(context.Background(), runner, config.PackageManager(), dir, installer.DevPackages)
			var skipped *installer.ErrSkipped
			switch {
			case err == nil:
				return steps.Okf("%d packages", len(installer.DevPackages))
			case errors.As(err, &skipped):
				return steps.Warnf("%s", skipped.Reason)
			default:
				return steps.Warnf("%v", err)
			}
		}},
	}

	if res, ok := driver.Run(list); !ok {
		return fmt.Errorf("setup %s failed: %s", dir, res.Message)
	}

	out.Successf("Standards applied to %s", dir)
	return nil
}

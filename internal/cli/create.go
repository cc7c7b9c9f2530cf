package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/frontforge-labs/frontforge/internal/branding"
	"github.com/frontforge-labs/frontforge/internal/git"
	"github.com/frontforge-labs/frontforge/internal/manifest"
	"github.com/frontforge-labs/frontforge/internal/scaffold"
	"github.com/frontforge-labs/frontforge/internal/steps"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new frontend project",
	Long: `Create a new project as a subdirectory of the current directory: full
directory tree, package.json, lint/format/type-check configuration, the
standards documents, and a minimal working React application, finished
with an initial git commit.

Example:
  ` + branding.CLIName() + ` create demo-app`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(args[0])
	},
}

func runCreate(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}

	target := filepath.Join(".", name)

	// Precondition check before any filesystem mutation.
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("directory %s already exists", target)
	}

	out := newConsole()
	runner := newRunner()
	data := scaffold.NewData(name)
	driver := &steps.Driver{Console: out}

	list := []steps.Step{
		{Name: "Create directory tree", Run: func() steps.Result {
			if err := os.Mkdir(target, 0755); err != nil {
				return steps.Fatalf("creating %s: %v", target, err)
			}
			return ensureDirs(out, target)
		}},
		{Name: "Write package.json", Run: func() steps.Result {
			if err := manifest.WriteFile(target, name); err != nil {
				return steps.Fatalf("%v", err)
			}
			warnManifestIssues(out, filepath.Join(target, manifest.FileName))
			return steps.OkResult()
		}},
		{Name: "Copy standards documents", Run: func() steps.Result {
			return copyStandards(out, target)
		}},
		{Name: "Write configuration files", Run: func() steps.Result {
			return emitConfigs(out, target)
		}},
		{Name: "Write application skeleton", Run: func() steps.Result {
			files, err := scaffold.EmitSkeleton(target, data)
			if err != nil {
				return steps.Fatalf("%v", err)
			}
			return steps.Okf("%d files", len(files))
		}},
		{Name: "Write README", Run: func() steps.Result {
			if err := scaffold.WriteReadme(target, data); err != nil {
				return steps.Fatalf("%v", err)
			}
			return steps.OkResult()
		}},
		{Name: "Initialize git repository", Run: func() steps.Result {
			if err := git.Bootstrap(context.Background(), runner, target); err != nil {
				return steps.Warnf("%v", err)
			}
			return steps.OkResult()
		}},
	}

	if res, ok := driver.Run(list); !ok {
		return fmt.Errorf("create %s failed: %s", name, res.Message)
	}

	out.Successf("Project %s created", name)
	out.Infof("Next steps: cd %s && npm install && npm start", name)
	return nil
}

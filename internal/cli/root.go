package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frontforge-labs/frontforge/internal/branding"
	"github.com/frontforge-labs/frontforge/internal/config"
	"github.com/frontforge-labs/frontforge/internal/console"
	"github.com/frontforge-labs/frontforge/internal/execx"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds new frontend projects and applies the shared
standards bundle (docs, lint, format, and type-check configuration) to
existing ones.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// newConsole builds the console every command reports through, honoring the
// configured color preference.
func newConsole() *console.Console {
	return console.New(console.Options{Color: config.ColorEnabled()})
}

// newRunner is swapped for a fake in tests so flows never spawn real
// subprocesses there.
var newRunner = func() execx.Runner {
	return execx.NewRealRunner()
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

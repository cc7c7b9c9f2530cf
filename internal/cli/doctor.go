package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/frontforge-labs/frontforge/internal/doctor"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the host tooling the scaffolding flows depend on",
	Long: `Verify that git, node, and npm are installed and meet the minimum
versions the create and setup flows expect.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newConsole()
		results := doctor.Check(context.Background(), newRunner(), doctor.DefaultTools)
		for _, r := range results {
			switch {
			case r.OK:
				out.Successf("%s %s", r.Tool.Name, r.Version)
			case r.Found:
				out.Warnf("%s: %s", r.Tool.Name, r.Detail)
			default:
				out.Errorf("%s: %s", r.Tool.Name, r.Detail)
			}
		}
		return nil
	},
}

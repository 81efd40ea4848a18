package cmd

import (
	"context"

	"github.com/kmizu/JavaSee/internal/domain"
	"github.com/spf13/cobra"
)

// testCmd represents the test command.
var testCmd = newTestCmd()

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check rules against their before and after examples",
		Long: `Test compiles every rule of the configuration file, reports duplicate ids and
runs each rule's examples: before examples must match, after examples must
not. It exits with status 2 when anything fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, w domain.Workflow) error {
				return w.Test(ctx, domain.TestArgs{Config: configFlag()})
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(testCmd)
}

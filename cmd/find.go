package cmd

import (
	"context"

	"github.com/kmizu/JavaSee/internal/domain"
	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/spf13/cobra"
)

var findLimitFlag int
var findRootFlag string

// findCmd represents the find command.
var findCmd = newFindCmd()

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <pattern> [paths...]",
		Short: "Print code matching a pattern",
		Long: `Find compiles one pattern and prints every match under the given paths
without reading the configuration file. Matches are not treated as failures.`,
		Example: `  javasee find '_.equals(null)' src
  javasee find 'System.out.println(...)' --limit 10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, w domain.Workflow) error {
				return w.Find(ctx, domain.FindArgs{
					Pattern: args[0],
					Paths:   parsePaths(args[1:]),
					Root:    m.Path(findRootFlag),
					Workers: workersFlag(),
					Limit:   findLimitFlag,
				})
			})
		},
	}
	cmd.Flags().IntVarP(&findLimitFlag, "limit", "n", 0, "stop after this many matches (0: no limit)")
	cmd.Flags().StringVar(&findRootFlag, "root", "", "directory reported paths are relative to")

	return cmd
}

func init() {
	rootCmd.AddCommand(findCmd)
}

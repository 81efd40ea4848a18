package cmd

import (
	"context"

	"github.com/kmizu/JavaSee/internal/domain"
	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/spf13/cobra"
)

var checkRootFlag string
var checkRuleFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report code matching the configured rules",
		Long: `Check analyzes every .java file under the given paths (default: the current
directory) with the rules from the configuration file. It exits with status 2
when any rule matched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, w domain.Workflow) error {
				return w.Check(ctx, domain.CheckArgs{
					Paths:   parsePaths(args),
					Config:  configFlag(),
					Root:    m.Path(checkRootFlag),
					Rule:    checkRuleFlag,
					Workers: workersFlag(),
				})
			})
		},
	}
	cmd.Flags().StringVar(&checkRootFlag, "root", "", "directory check paths in the configuration are relative to (default: current directory)")
	cmd.Flags().StringVar(&checkRuleFlag, "rule", "", "only run the rule with this id, or the rules below this id prefix")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

package cmd

import (
	"context"

	"github.com/kmizu/JavaSee/internal/domain"
	"github.com/spf13/cobra"
)

var initForceFlag bool

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, w domain.Workflow) error {
				return w.Init(ctx, domain.InitArgs{Config: configFlag(), Force: initForceFlag})
			})
		},
	}
	cmd.Flags().BoolVar(&initForceFlag, "force", false, "overwrite an existing configuration file")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}

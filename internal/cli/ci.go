package cli

import (
	"github.com/spf13/cobra"

	"gitstrap.dev/gitstrap/internal/actions"
	"gitstrap.dev/gitstrap/internal/cli/common"
	"gitstrap.dev/gitstrap/internal/runtime"
)

// newCICmd creates the ci command
func newCICmd(opts *common.Options) *cobra.Command {
	return &cobra.Command{
		Use:          "ci",
		Aliases:      []string{"workflow"},
		Short:        "Write the GitHub Actions workflow",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				_, err := actions.GenerateWorkflowAction(ctx)
				return err
			})
		},
	}
}

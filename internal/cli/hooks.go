package cli

import (
	"github.com/spf13/cobra"

	"gitstrap.dev/gitstrap/internal/actions"
	"gitstrap.dev/gitstrap/internal/cli/common"
	"gitstrap.dev/gitstrap/internal/runtime"
)

// newHooksCmd creates the hooks command
func newHooksCmd(opts *common.Options) *cobra.Command {
	return &cobra.Command{
		Use:          "hooks",
		Short:        "Write .pre-commit-config.yaml and install pre-commit",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				_, err := actions.InstallPreCommitAction(ctx)
				return err
			})
		},
	}
}

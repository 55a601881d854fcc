package cli

import (
	"github.com/spf13/cobra"

	"gitstrap.dev/gitstrap/internal/actions"
	"gitstrap.dev/gitstrap/internal/cli/common"
	"gitstrap.dev/gitstrap/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd(opts *common.Options) *cobra.Command {
	return &cobra.Command{
		Use:          "doctor",
		Short:        "Check the project against the expected layout without changing it",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				_, err := actions.DoctorAction(ctx)
				return err
			})
		},
	}
}

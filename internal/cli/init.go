package cli

import (
	"github.com/spf13/cobra"

	"gitstrap.dev/gitstrap/internal/actions"
	"gitstrap.dev/gitstrap/internal/cli/common"
	"gitstrap.dev/gitstrap/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd(opts *common.Options) *cobra.Command {
	var noHooks bool

	cmd := &cobra.Command{
		Use:          "init",
		Aliases:      []string{"i"},
		Short:        "Initialize the repository, placeholders and initial commit",
		Long:         "Initialize the repository, apply local settings, create placeholder directories, commit, then set up pre-commit hooks.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				_, err := actions.SetupAction(ctx, actions.SetupOptions{
					Repository: true,
					Hooks:      !noHooks,
				})
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&noHooks, "no-hooks", false, "Skip the pre-commit setup")

	return cmd
}

// Package cli wires gitstrap's commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitstrap.dev/gitstrap/internal/actions"
	"gitstrap.dev/gitstrap/internal/cli/common"
	"gitstrap.dev/gitstrap/internal/runtime"
)

// NewRootCmd creates the root cobra command. Run without a subcommand it
// performs the full setup.
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &common.Options{}

	rootCmd := &cobra.Command{
		Use:   "gitstrap",
		Short: "Bootstrap Git, pre-commit and CI for a research project",
		Long: `gitstrap prepares a research project for version control.

Run without a subcommand it initializes a Git repository with research
friendly settings, creates the data/experiments/logs skeleton, makes the
initial commit, installs pre-commit hooks and writes a GitHub Actions
workflow. Failing external commands are reported and the remaining steps
still run.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				res, err := actions.SetupAction(ctx, actions.AllSteps)
				if err != nil {
					return err
				}
				actions.PrintNextSteps(ctx, res)
				return nil
			})
		},
	}

	opts.Bind(rootCmd)

	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newHooksCmd(opts))
	rootCmd.AddCommand(newCICmd(opts))
	rootCmd.AddCommand(newDoctorCmd(opts))
	rootCmd.AddCommand(newTemplatesCmd())

	return rootCmd
}

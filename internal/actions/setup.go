package actions

import (
	"gitstrap.dev/gitstrap/internal/runtime"
	"gitstrap.dev/gitstrap/internal/tui/style"
)

// SetupOptions selects which steps SetupAction runs
type SetupOptions struct {
	Repository bool
	Hooks      bool
	Workflow   bool
}

// AllSteps runs the full bootstrap
var AllSteps = SetupOptions{Repository: true, Hooks: true, Workflow: true}

// SetupAction runs the selected steps in order: repository, hooks, workflow.
// Hooks are skipped when the operator declines reinitialization. Command
// failures never stop the sequence.
func SetupAction(ctx *runtime.Context, opts SetupOptions) (*Result, error) {
	res := &Result{}

	if opts.Repository {
		initRes, err := InitRepositoryAction(ctx)
		res.Merge(initRes)
		if err != nil {
			return res, err
		}
	}

	if err := res.Err(); opts.Hooks && err != nil {
		ctx.Splog.Debug("skipping pre-commit setup: %v", err)
	} else if opts.Hooks {
		hookRes, err := InstallPreCommitAction(ctx)
		res.Merge(hookRes)
		if err != nil {
			return res, err
		}
	}

	if opts.Workflow {
		ciRes, err := GenerateWorkflowAction(ctx)
		res.Merge(ciRes)
		if err != nil {
			return res, err
		}
	}

	return res, nil
}

// PrintNextSteps reports completion and the commands that publish the repository
func PrintNextSteps(ctx *runtime.Context, res *Result) {
	splog := ctx.Splog

	splog.Newline()
	if len(res.Failed) > 0 {
		splog.Warn("%d command(s) failed during setup, see the messages above", len(res.Failed))
	}
	splog.Info(style.Success("🎉 Git infrastructure setup complete!"))
	splog.Newline()
	splog.Info(style.Heading("Next steps:"))
	splog.Info("1. Create a GitHub repository")
	splog.Info("2. Add remote: %s", style.Command("git remote add origin "+ctx.Profile.RemoteURL))
	splog.Info("3. Push code: %s", style.Command("git push -u origin "+ctx.Profile.Branch))
}

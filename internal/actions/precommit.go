package actions

import (
	"gitstrap.dev/gitstrap/internal/runtime"
	"gitstrap.dev/gitstrap/internal/templates"
)

// InstallPreCommitAction writes the pre-commit configuration, replacing any
// existing file, then installs and registers pre-commit.
func InstallPreCommitAction(ctx *runtime.Context) (*Result, error) {
	splog := ctx.Splog
	res := &Result{}

	splog.Newline()
	splog.Info("🔨 Setting up pre-commit hooks...")

	if err := writeTemplate(ctx, res, templates.PreCommitConfig()); err != nil {
		return res, err
	}

	for _, command := range ctx.Profile.HookCommands {
		res.run(ctx, command)
	}

	splog.Info("✅ Pre-commit hooks installed!")
	return res, nil
}

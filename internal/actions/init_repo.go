package actions

import (
	"fmt"

	"gitstrap.dev/gitstrap/internal/fsutil"
	"gitstrap.dev/gitstrap/internal/git"
	"gitstrap.dev/gitstrap/internal/runtime"
)

// InitRepositoryAction initializes the repository in ctx.Dir, applies the
// profile's local settings, lays down placeholder directories and makes the
// initial commit. When a repository already exists the operator is asked
// first; declining leaves everything untouched and sets Result.Declined.
func InitRepositoryAction(ctx *runtime.Context) (*Result, error) {
	splog := ctx.Splog
	profile := ctx.Profile
	res := &Result{}

	splog.Info("🔧 Configuring Git repository...")

	if git.HasMarker(ctx.Dir) {
		splog.Warn("Git repository already initialized")
		ok, err := ctx.Prompter.Confirm("Reinitialize?")
		if err != nil {
			splog.Warn("%v", err)
		}
		if err != nil || !ok {
			res.Declined = true
			return res, nil
		}
	}

	res.run(ctx, "git init")

	for _, setting := range profile.GitSettings {
		res.run(ctx, setting.Command())
	}

	for _, dir := range profile.PlaceholderDirs {
		path, err := fsutil.ConfineRelPath(ctx.Dir, dir)
		if err != nil {
			return res, fmt.Errorf("placeholder %s: %w", dir, err)
		}
		if err := fsutil.EnsurePlaceholder(path, profile.Marker); err != nil {
			return res, err
		}
		splog.Debug("placeholder %s/%s", dir, profile.Marker)
	}

	splog.Info("📝 Creating initial commit...")
	res.run(ctx, "git add .")
	res.run(ctx, profile.CommitCommand())

	splog.Info("✅ Git repository initialized successfully!")
	return res, nil
}

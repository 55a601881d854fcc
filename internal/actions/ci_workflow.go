package actions

import (
	"fmt"

	"gitstrap.dev/gitstrap/internal/fsutil"
	"gitstrap.dev/gitstrap/internal/runtime"
	"gitstrap.dev/gitstrap/internal/templates"
	"gitstrap.dev/gitstrap/internal/tui/style"
)

// GenerateWorkflowAction writes the GitHub Actions workflow, replacing any
// existing file.
func GenerateWorkflowAction(ctx *runtime.Context) (*Result, error) {
	splog := ctx.Splog
	res := &Result{}

	splog.Newline()
	splog.Info("🚀 Creating GitHub Actions workflow...")

	if err := writeTemplate(ctx, res, templates.CIWorkflow()); err != nil {
		return res, err
	}

	splog.Info("✅ GitHub Actions workflow created!")
	return res, nil
}

func writeTemplate(ctx *runtime.Context, res *Result, tmpl templates.Template) error {
	path := ctx.Path(tmpl.Path)
	if err := fsutil.WriteFileAtomic(path, tmpl.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpl.Path, err)
	}
	res.Written = append(res.Written, tmpl.Path)
	ctx.Splog.Debug("wrote %s", style.Path(tmpl.Path))
	return nil
}

package actions

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"

	"gitstrap.dev/gitstrap/internal/git"
	"gitstrap.dev/gitstrap/internal/runtime"
	"gitstrap.dev/gitstrap/internal/templates"
	"gitstrap.dev/gitstrap/internal/tui/style"
)

// ErrDoctorFailed is returned when at least one doctor check fails
var ErrDoctorFailed = errors.New("doctor found problems")

// Check is one line of the doctor report
type Check struct {
	Section string
	Name    string
	OK      bool
	Detail  string
}

// DoctorAction inspects the project without changing it: repository,
// local settings, HEAD commit, placeholders and generated files.
func DoctorAction(ctx *runtime.Context) ([]Check, error) {
	splog := ctx.Splog
	profile := ctx.Profile

	splog.Info("Running gitstrap doctor in %s...", style.Path(ctx.Dir))

	var checks []Check
	add := func(section, name string, ok bool, detail string) {
		checks = append(checks, Check{Section: section, Name: name, OK: ok, Detail: detail})
	}

	repo, err := git.OpenRepository(ctx.Dir)
	if err != nil {
		add("Repository", "repository", false, err.Error())
	} else {
		add("Repository", "repository", true, "")

		for _, setting := range profile.GitSettings {
			value, err := git.LocalSetting(repo, setting.Key)
			switch {
			case err != nil:
				add("Repository", setting.Key, false, err.Error())
			case value != setting.Value:
				add("Repository", setting.Key, false, fmt.Sprintf("is %q, want %q", value, setting.Value))
			default:
				add("Repository", setting.Key, true, value)
			}
		}

		head, err := git.Head(repo)
		if err != nil {
			add("Repository", "HEAD", false, err.Error())
		} else {
			add("Repository", "HEAD", true, fmt.Sprintf("%s %s (%s)", head.Hash[:7], head.Subject, head.Branch))
		}
	}

	for _, dir := range profile.PlaceholderDirs {
		marker := path.Join(dir, profile.Marker)
		info, err := os.Stat(ctx.Path(marker))
		switch {
		case err != nil:
			add("Placeholders", marker, false, "missing")
		case info.Size() != 0:
			add("Placeholders", marker, false, "not empty")
		case repo != nil:
			tracked, err := git.TrackedInHead(repo, marker)
			if err != nil || !tracked {
				add("Placeholders", marker, false, "not committed")
			} else {
				add("Placeholders", marker, true, "")
			}
		default:
			add("Placeholders", marker, true, "")
		}
	}

	for _, tmpl := range templates.All() {
		data, err := os.ReadFile(ctx.Path(tmpl.Path))
		switch {
		case err != nil:
			add("Generated files", tmpl.Path, false, "missing")
		case !bytes.Equal(data, tmpl.Bytes()):
			add("Generated files", tmpl.Path, false, "differs from template")
		default:
			add("Generated files", tmpl.Path, true, "")
		}
	}

	failed := printChecks(ctx, checks)

	splog.Newline()
	if failed > 0 {
		splog.Warn("Doctor found %d problem(s).", failed)
		return checks, fmt.Errorf("%w: %d check(s) failed", ErrDoctorFailed, failed)
	}
	splog.Info(style.Success("✅ All checks passed."))
	return checks, nil
}

func printChecks(ctx *runtime.Context, checks []Check) int {
	splog := ctx.Splog
	failed := 0
	section := ""
	for _, c := range checks {
		if c.Section != section {
			section = c.Section
			splog.Newline()
			splog.Info(style.Heading(section + ":"))
		}
		line := c.Name
		if c.Detail != "" {
			line += ": " + c.Detail
		}
		if c.OK {
			splog.Info("  ✅ %s", line)
		} else {
			failed++
			splog.Info("  ❌ %s", style.Fail(line))
		}
	}
	return failed
}

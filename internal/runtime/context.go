package runtime

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gitstrap.dev/gitstrap/internal/config"
	"gitstrap.dev/gitstrap/internal/shell"
	"gitstrap.dev/gitstrap/internal/tui"
)

// Context provides access to the logger, runner and profile for actions
type Context struct {
	Context  context.Context
	Splog    *tui.Splog
	Runner   shell.Runner
	Profile  *config.Profile
	Prompter tui.Prompter
	Dir      string
}

// Options configure NewContext
type Options struct {
	// Context is threaded into every external command; nil means context.Background()
	Context context.Context
	// Dir is the project directory; empty means the process working directory
	Dir         string
	ProfilePath string
	Splog       *tui.Splog
	Prompter    tui.Prompter
	// Env is appended to the environment of every external command
	Env []string
}

// NewContext resolves the project directory, loads the profile and wires a
// command runner rooted at the project.
func NewContext(opts Options) (*Context, error) {
	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", opts.Dir, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("project directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project directory %s is not a directory", dir)
	}

	profile, err := config.LoadProfile(opts.ProfilePath)
	if err != nil {
		return nil, err
	}

	splog := opts.Splog
	if splog == nil {
		splog = tui.NewSplog()
	}
	prompter := opts.Prompter
	if prompter == nil {
		prompter = tui.NewPrompter()
	}

	goCtx := opts.Context
	if goCtx == nil {
		goCtx = context.Background()
	}

	return &Context{
		Context:  goCtx,
		Splog:    splog,
		Runner:   shell.NewCommandRunner(dir).WithEnv(opts.Env...),
		Profile:  profile,
		Prompter: prompter,
		Dir:      dir,
	}, nil
}

// Path joins rel (slash separated) onto the project directory
func (c *Context) Path(rel string) string {
	return filepath.Join(c.Dir, filepath.FromSlash(rel))
}

// Package shell runs external commands (git, pip, pre-commit) on behalf of the setup steps.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	gserrors "gitstrap.dev/gitstrap/internal/errors"
)

// Runner executes a shell command line and returns its trimmed stdout.
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
	WorkingDir() string
}

// Logger is the subset of tui.Splog used to report command outcomes.
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// CommandRunner handles execution of shell commands
type CommandRunner struct {
	workingDir string
	shell      string
	env        []string
}

// NewCommandRunner creates a new CommandRunner. An empty workingDir runs
// commands in the process working directory.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir, shell: "sh"}
}

// WithEnv returns a copy of the runner that appends env to the process environment
func (r *CommandRunner) WithEnv(env ...string) *CommandRunner {
	clone := *r
	clone.env = append(append([]string(nil), r.env...), env...)
	return &clone
}

// WorkingDir returns the directory commands run in
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes command through `sh -c` and returns the trimmed stdout.
// A non-zero exit, or a failure to start, is returned as *errors.CommandError.
func (r *CommandRunner) Run(ctx context.Context, command string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", gserrors.NewCommandError(command, r.workingDir, exitCode, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Try runs command and reports a failure to the operator instead of returning it.
// It returns true when the command exited zero. Callers continue either way.
func Try(ctx context.Context, r Runner, log Logger, command string) bool {
	log.Debug("$ %s", command)
	out, err := r.Run(ctx, command)
	if err == nil {
		if out != "" {
			log.Debug("%s", out)
		}
		return true
	}

	var cmdErr *gserrors.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Started() {
		log.Warn("Error running command: %s", command)
		log.Info("Error: %s", strings.TrimSpace(cmdErr.Stderr))
		return false
	}
	log.Warn("Exception running command: %v", err)
	return false
}

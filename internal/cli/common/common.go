// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"gitstrap.dev/gitstrap/internal/runtime"
	"gitstrap.dev/gitstrap/internal/tui"
)

// Options holds the persistent flags shared by every command
type Options struct {
	Dir           string
	ConfigPath    string
	Yes           bool
	NoInteractive bool
	Quiet         bool
}

// Bind registers the persistent flags on cmd
func (o *Options) Bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.Dir, "dir", "C", "", "Project directory (defaults to the current directory)")
	flags.StringVar(&o.ConfigPath, "config", "", "Profile file overriding the default layout")
	flags.BoolVarP(&o.Yes, "yes", "y", false, "Reinitialize an existing repository without asking")
	flags.BoolVar(&o.NoInteractive, "no-interactive", false, "Never prompt; an existing repository is left alone unless --yes")
	flags.BoolVarP(&o.Quiet, "quiet", "q", false, "Suppress console output")
}

func (o *Options) prompter() tui.Prompter {
	switch {
	case o.Yes:
		return tui.FixedPrompter(true)
	case o.NoInteractive:
		return tui.FixedPrompter(false)
	default:
		return tui.NewPrompter()
	}
}

// Run builds a runtime context from the flags and passes it to fn.
// The log file, if any, is closed when fn returns.
func Run(cmd *cobra.Command, opts *Options, fn func(ctx *runtime.Context) error) error {
	splog, err := tui.NewSplogWithConfig(cmd.OutOrStdout(), tui.GetLogFilePath())
	if err != nil {
		return err
	}
	defer func() { _ = splog.Close() }()
	splog.SetQuiet(opts.Quiet)

	ctx, err := runtime.NewContext(runtime.Options{
		Context:     cmd.Context(),
		Dir:         opts.Dir,
		ProfilePath: opts.ConfigPath,
		Splog:       splog,
		Prompter:    opts.prompter(),
	})
	if err != nil {
		return err
	}
	return fn(ctx)
}

package main

import (
	"os"

	"gitstrap.dev/gitstrap/internal/cli"
	"gitstrap.dev/gitstrap/internal/tui/style"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	style.Init()

	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the monitor-cli binary.
//
// It reads or writes a monitor's VCP features by running ddcutil. All
// functionality lives in the internal/cli package.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development, they default to "dev", "none", and "unknown" respectively.
package main

import (
	"github.com/shinji-kodama/monitor-cli/internal/cli"
	"github.com/shinji-kodama/monitor-cli/internal/ddcutil"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand(ddcutil.NewExecRunner())
	cli.Execute(rootCmd)
}

// Package cli implements the cobra-based command line of monitor-cli.
//
// The tool is a single root command:
//
//	monitor-cli <feature> [-v VALUE | -u DELTA | -d DELTA]
//
// It resolves the feature to a VCP code, picks getvcp or setvcp and runs
// ddcutil once. Every stage returns an error; Execute is the only place
// that turns errors into process exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/monitor-cli/internal/config"
	"github.com/shinji-kodama/monitor-cli/internal/ddcutil"
	"github.com/shinji-kodama/monitor-cli/internal/model"
)

// Global flag variables. They are reset to their defaults each time
// NewRootCommand registers the flags.
var (
	// jsonOutput prints the --dry-run invocation as JSON.
	jsonOutput bool

	// verbose enables debug logging on stderr.
	verbose bool

	// dryRun prints the ddcutil invocation instead of running it.
	dryRun bool

	// cfgFile is an explicit config file path.
	cfgFile string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Flag names for the mutually exclusive write options.
const (
	flagValue = "value"
	flagUp    = "up"
	flagDown  = "down"
)

// NewRootCommand creates and configures the root cobra command.
// runner executes the assembled ddcutil invocation.
func NewRootCommand(runner ddcutil.Runner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "monitor-cli <feature>",
		Short: "Get or set monitor VCP features using ddcutil",
		Long: `monitor-cli reads or writes a monitor feature over DDC/CI by running ddcutil.

The feature is a VCP code or a name:
  a, 1f, 10     one or two hex digits
  0x10          hex with a 0x prefix
  255           decimal 0-255
  brightness    known name (also: contrast)

Without --value, --up or --down the feature is read (getvcp).
With one of them it is written (setvcp).`,
		Example: `  monitor-cli brightness
  monitor-cli brightness -v 50
  monitor-cli contrast --up 5
  monitor-cli 0x10 --down 10 --bus 4
  monitor-cli brightness -v 80 --dry-run --json`,

		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return model.WrapCLIError(model.ExitUsageError, "expected exactly one feature code or name", err)
			}
			return nil
		},

		SilenceUsage:  true,
		SilenceErrors: true,

		Version: versionString(),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeature(cmd.Context(), cmd, runner, requestFromFlags(cmd, args[0]))
		},
	}

	flags := rootCmd.Flags()
	flags.StringP(flagValue, "v", "", "Value to set the feature to. If none, the feature is read instead")
	flags.StringP(flagUp, "u", "", "Add to the current value of the feature")
	flags.StringP(flagDown, "d", "", "Subtract from the current value of the feature")
	rootCmd.MarkFlagsMutuallyExclusive(flagValue, flagUp, flagDown)

	flags.Int(config.KeyBus, config.DefaultBus, "I2C bus of the monitor (env MONITOR_CLI_BUS)")
	flags.String(config.KeyDdcutil, config.DefaultDdcutil, "ddcutil executable (env MONITOR_CLI_DDCUTIL)")
	flags.StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/monitor-cli/config.yaml)")
	flags.BoolVar(&dryRun, "dry-run", false, "Print the ddcutil command instead of running it")
	flags.BoolVar(&jsonOutput, "json", false, "Print --dry-run output as JSON")
	// No shorthand: -v belongs to --value.
	flags.BoolVar(&verbose, "verbose", false, "Enable verbose output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitUsageError, "invalid arguments", err)
	})

	return rootCmd
}

// requestFromFlags builds the Request. An option is present when the user
// supplied it, even with an empty string.
func requestFromFlags(cmd *cobra.Command, feature string) model.Request {
	req := model.Request{Feature: feature}
	flags := cmd.Flags()
	if flags.Changed(flagValue) {
		v, _ := flags.GetString(flagValue)
		req.Value = &v
	}
	if flags.Changed(flagUp) {
		v, _ := flags.GetString(flagUp)
		req.Up = &v
	}
	if flags.Changed(flagDown) {
		v, _ := flags.GetString(flagDown)
		req.Down = &v
	}
	return req
}

// Execute runs the root command and exits with the mapped exit code on error.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(versionString())); err != nil {
		os.Exit(int(ExitCodeFor(err)))
	}
}

// ExitCodeFor maps an error returned by the root command to a process exit code.
//
// CLIError types carry their own exit codes. Anything else was raised by
// cobra while parsing the command line (mutually exclusive flags, for
// instance) and is a usage error.
func ExitCodeFor(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitUsageError
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/monitor-cli/internal/config"
	"github.com/shinji-kodama/monitor-cli/internal/ddcutil"
	"github.com/shinji-kodama/monitor-cli/internal/model"
	"github.com/shinji-kodama/monitor-cli/internal/vcp"
)

// newLogger returns the stderr logger. Debug output only appears with --verbose.
func newLogger(w io.Writer) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "monitor-cli",
		Level:  level,
	})
}

// runFeature is the main logic of the root command:
// load config, resolve the code, build the invocation, then run it once.
func runFeature(ctx context.Context, cmd *cobra.Command, runner ddcutil.Runner, req model.Request) error {
	logger := newLogger(cmd.ErrOrStderr())

	if err := req.Validate(); err != nil {
		return err
	}

	cfg, cfgPath, err := config.Load(config.LoadOptions{
		ConfigFilePath: cfgFile,
		Flags:          cmd.Flags(),
	})
	if err != nil {
		return err
	}
	if cfgPath != "" {
		logger.Debug("Loaded config", "path", cfgPath)
	}
	logger.Debug("Using configuration", "bus", cfg.Bus, "ddcutil", cfg.Ddcutil)

	code, rule, err := vcp.NewResolver().Resolve(req.Feature)
	if err != nil {
		return err
	}
	logger.Debug("Resolved feature", "feature", req.Feature, "code", code, "rule", rule, "mode", req.Mode())

	inv := ddcutil.Build(cfg.Ddcutil, cfg.Bus, req, code)

	if dryRun {
		return printInvocation(cmd.OutOrStdout(), inv)
	}

	logger.Debug("Running ddcutil", "command", inv.String())
	exitCode, err := runner.Run(ctx, inv)
	if err != nil {
		return err
	}
	// ddcutil reports its own failures on the inherited streams.
	logger.Debug("ddcutil exited", "code", exitCode)
	return nil
}

// printInvocation writes the invocation in text or JSON format.
func printInvocation(w io.Writer, inv ddcutil.Invocation) error {
	if !jsonOutput {
		_, err := fmt.Fprintln(w, inv.String())
		return err
	}

	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode invocation: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

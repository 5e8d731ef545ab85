package ddcutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/shinji-kodama/monitor-cli/internal/model"
)

// Runner executes an Invocation and waits for it to finish.
//
// exitCode is the child's exit status (-1 if it was terminated by a signal).
// err is non-nil only when the child could not be started or waited for.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (exitCode int, err error)
}

// ExecRunner runs invocations as child processes via os/exec.
//
// Nil streams fall back to the current process's stdin, stdout and stderr,
// so ddcutil output goes straight to the terminal.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner bound to the process's standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts the binary, blocks until it exits and returns its exit code.
//
// A non-zero exit is not an error: whether ddcutil's operation succeeded is
// its own business. Failing to launch the binary (e.g. not found on PATH)
// returns a model.CLIError with ExitSpawnFailed.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) (int, error) {
	// #nosec G204 -- binary comes from configuration, args from Build
	cmd := exec.CommandContext(ctx, inv.Binary, inv.Args...)
	cmd.Stdin = orReader(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = orWriter(r.Stderr, os.Stderr)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return -1, model.WrapCLIError(model.ExitSpawnFailed,
		fmt.Sprintf("failed to execute %s", inv.Binary), err)
}

func orReader(r io.Reader, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w io.Writer, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}

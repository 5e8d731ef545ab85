package ddcutil

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/monitor-cli/internal/model"
)

// requireBinary skips the test when a POSIX utility is missing from PATH.
func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not found on PATH", name)
	}
}

// TestExecRunner_Success verifies a zero exit and that output reaches the
// configured stdout.
func TestExecRunner_Success(t *testing.T) {
	requireBinary(t, "echo")

	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout}

	code, err := r.Run(context.Background(), Invocation{Binary: "echo", Args: []string{"--bus=6", "getvcp", "10"}})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "--bus=6 getvcp 10\n", stdout.String())
}

// TestExecRunner_NonZeroExit checks that a failing child is reported by
// exit code, not as an error.
func TestExecRunner_NonZeroExit(t *testing.T) {
	requireBinary(t, "false")

	code, err := NewExecRunner().Run(context.Background(), Invocation{Binary: "false"})
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

// TestExecRunner_SpawnFailure verifies a missing binary becomes a spawn error.
func TestExecRunner_SpawnFailure(t *testing.T) {
	var stderr bytes.Buffer
	r := &ExecRunner{Stderr: &stderr}

	_, err := r.Run(context.Background(), Invocation{
		Binary: "monitor-cli-no-such-binary",
		Args:   []string{"--bus=6", "getvcp", "10"},
	})
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitSpawnFailed, cliErr.Code)
	assert.Contains(t, err.Error(), "failed to execute monitor-cli-no-such-binary")
	assert.True(t, errors.Is(err, exec.ErrNotFound))
	assert.Empty(t, stderr.String())
}

// Test Type: Unit Test
// Description: Tests for the executor package - capability-scoped process execution

package executor

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/arthur-debert/envboot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shPath resolves a POSIX shell for test invocations, skipping on hosts
// without one.
func shPath(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("no sh on PATH")
	}
	return path
}

func TestExecuteCapturesStdout(t *testing.T) {
	exe := New()
	out, err := exe.Execute(context.Background(), Invocation{
		Path:    shPath(t),
		Args:    []string{"-c", "echo hello && echo oops >&2"},
		Env:     []string{"PATH=/usr/bin:/bin"},
		Timeout: 5 * time.Second,
	})

	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out.Stdout))
	assert.Equal(t, "oops\n", string(out.Stderr))
	assert.Equal(t, 0, out.ExitCode)
}

func TestExecuteRestrictedEnv(t *testing.T) {
	t.Setenv("ENVBOOT_LEAK_CHECK", "leaked")

	exe := New()
	out, err := exe.Execute(context.Background(), Invocation{
		Path:    shPath(t),
		Args:    []string{"-c", "echo \"value=[$ENVBOOT_LEAK_CHECK]\""},
		Env:     []string{"PATH=/usr/bin:/bin"},
		Timeout: 5 * time.Second,
	})

	require.NoError(t, err)
	// The child only sees the environment the invocation carries.
	assert.Equal(t, "value=[]\n", string(out.Stdout))
}

func TestExecuteNonZeroExit(t *testing.T) {
	exe := New()
	out, err := exe.Execute(context.Background(), Invocation{
		Path:    shPath(t),
		Args:    []string{"-c", "exit 3"},
		Timeout: 5 * time.Second,
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNonZeroExit))
	assert.Equal(t, 3, out.ExitCode)
}

func TestExecuteTimeout(t *testing.T) {
	exe := New()
	_, err := exe.Execute(context.Background(), Invocation{
		Path:    shPath(t),
		Args:    []string{"-c", "sleep 5"},
		Timeout: 100 * time.Millisecond,
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTimeout))
}

func TestExecuteSpawnFailure(t *testing.T) {
	exe := New()
	_, err := exe.Execute(context.Background(), Invocation{
		Path:    "/nonexistent/binary/for/envboot/tests",
		Timeout: time.Second,
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSpawnFailure))
}

func TestExecuteEmptyPath(t *testing.T) {
	exe := New()
	_, err := exe.Execute(context.Background(), Invocation{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

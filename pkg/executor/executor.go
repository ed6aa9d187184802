package executor

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"time"

	"github.com/arthur-debert/envboot/pkg/errors"
	"github.com/arthur-debert/envboot/pkg/logging"
)

// Invocation describes one external-process execution: the executable, its
// argument vector, the exact child environment, and a hard timeout. It is
// created per call and discarded once the output has been consumed.
type Invocation struct {
	Path    string        // Executable path
	Args    []string      // Argument vector, not including the executable
	Env     []string      // Child environment as KEY=VALUE strings
	Timeout time.Duration // Hard bound on the call; zero means no bound
}

// Output is the captured result of an Invocation.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Executor runs a single capability-scoped external process. Implementations
// must not connect stdin and must capture stdout and stderr.
type Executor interface {
	Execute(ctx context.Context, inv Invocation) (Output, error)
}

// processExecutor is the os/exec backed Executor.
type processExecutor struct{}

// New returns an Executor backed by os/exec.
func New() Executor {
	return processExecutor{}
}

// Execute runs the invocation synchronously. Failures are reported as
// structured errors: SPAWN_FAILURE when the binary cannot be started,
// TIMEOUT when the bound is exceeded, NON_ZERO_EXIT when the process
// exits with a failing status.
func (processExecutor) Execute(ctx context.Context, inv Invocation) (Output, error) {
	logger := logging.GetLogger("executor")

	if inv.Path == "" {
		return Output{}, errors.New(errors.ErrInvalidInput, "invocation has no executable path")
	}

	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Env = inv.Env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug().
		Str("path", inv.Path).
		Strs("args", inv.Args).
		Dur("timeout", inv.Timeout).
		Msg("Executing command")

	start := time.Now()
	err := cmd.Run()
	logging.LogDuration(start, "executor.execute")

	out := Output{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		// Deadline beats exit status: a killed child also reports a
		// non-zero exit, but the caller needs to know it timed out.
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return out, errors.Wrapf(ctx.Err(), errors.ErrTimeout,
				"command %q exceeded %s", inv.Path, inv.Timeout)
		}

		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, errors.Wrapf(err, errors.ErrNonZeroExit,
				"command %q exited with status %d", inv.Path, out.ExitCode)
		}

		return out, errors.Wrapf(err, errors.ErrSpawnFailure,
			"failed to start %q", inv.Path)
	}

	return out, nil
}

package testutil

import (
	"context"

	"github.com/arthur-debert/envboot/pkg/executor"
)

// FakeExecutor is a scripted executor.Executor. It records every invocation
// and answers each call with the configured output and error, so loaders can
// be tested without spawning a real shell.
type FakeExecutor struct {
	Output executor.Output
	Err    error
	Calls  []executor.Invocation
}

// NewFakeExecutor returns a FakeExecutor whose stdout is the given string.
func NewFakeExecutor(stdout string) *FakeExecutor {
	return &FakeExecutor{Output: executor.Output{Stdout: []byte(stdout)}}
}

// Execute records the invocation and returns the scripted result.
func (f *FakeExecutor) Execute(_ context.Context, inv executor.Invocation) (executor.Output, error) {
	f.Calls = append(f.Calls, inv)
	return f.Output, f.Err
}

// LastCall returns the most recent invocation, or a zero Invocation if
// Execute was never called.
func (f *FakeExecutor) LastCall() executor.Invocation {
	if len(f.Calls) == 0 {
		return executor.Invocation{}
	}
	return f.Calls[len(f.Calls)-1]
}

// Package executor runs external processes as single capability-scoped
// operations: execute(path, args, env, timeout) -> output or error.
//
// Keeping the spawn behind the Executor interface means the callers that
// parse and merge shell output never need a real shell in their tests.
package executor

// Package envmap wraps the process-wide environment variable table behind
// an explicit accessor.
//
// GUI-launched processes and their bootstrap loaders all write into the same
// table, which is global mutable state with no transactional guarantees.
// Keeping it behind the Env interface lets tests substitute an isolated
// in-memory table (Map) for the real one (OS).
package envmap

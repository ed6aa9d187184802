// Package shellenv recovers the interactive-login shell environment for
// GUI-launched processes.
//
// On macOS, apps launched from Finder or the Dock inherit a minimal
// environment: none of the PATH additions from profile or rc files, none of
// the tool-manager shims. This package spawns the user's shell once as a
// login and interactive shell, captures its final environment dump, filters
// it, and merges it into the process environment. The shell is an opaque
// black box; its KEY=VALUE snapshot is the only observable output.
//
// The loader never fails: spawn errors, timeouts, and non-zero exits all
// degrade to a synthesized PATH built from well-known tool directories.
package shellenv

// Package paths synthesizes PATH values from well-known tool-install
// directories. It is the degraded-mode companion to the shell environment
// loader: when the login shell cannot be consulted, a PATH built from these
// directories still resolves package-manager and language-toolchain
// binaries.
package paths

// Package testutil provides shared fakes for loader tests: a scripted
// process executor and helpers around isolated environment tables.
package testutil

package paths

import (
	"path/filepath"
	"strings"
)

// ListSeparator joins and splits PATH entries. Only POSIX-style PATH values
// are supported.
const ListSeparator = ":"

// DefaultFallbackDirs is the ordered list of well-known tool-install
// directories used to synthesize a usable PATH when the login shell cannot
// be consulted. Entries starting with "~/" are resolved against the user's
// home directory.
var DefaultFallbackDirs = []string{
	"/opt/homebrew/bin",
	"/opt/homebrew/sbin",
	"/usr/local/bin",
	"/usr/local/sbin",
	"~/.local/bin",
	"~/bin",
	"~/.cargo/bin",
	"~/go/bin",
	"~/.bun/bin",
	"~/.volta/bin",
}

// ExpandHome resolves "~/"-prefixed directories against home, preserving
// order. Entries that need a home directory are dropped when home is empty.
func ExpandHome(dirs []string, home string) []string {
	expanded := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if strings.HasPrefix(dir, "~/") {
			if home == "" {
				continue
			}
			dir = filepath.Join(home, dir[2:])
		}
		expanded = append(expanded, dir)
	}
	return expanded
}

// MergePath prepends dirs to the entries of current (a PATH-style value),
// removing duplicates while preserving first-occurrence order. Empty
// entries are dropped.
func MergePath(dirs []string, current string) string {
	seen := make(map[string]bool)
	var merged []string

	appendEntry := func(entry string) {
		if entry == "" || seen[entry] {
			return
		}
		seen[entry] = true
		merged = append(merged, entry)
	}

	for _, dir := range dirs {
		appendEntry(dir)
	}
	for _, entry := range strings.Split(current, ListSeparator) {
		appendEntry(entry)
	}

	return strings.Join(merged, ListSeparator)
}

// CountEntries reports the number of distinct entries in a PATH-style value.
func CountEntries(path string) int {
	if path == "" {
		return 0
	}
	return len(strings.Split(path, ListSeparator))
}

// Test Type: Unit Test
// Description: Tests for the paths package - fallback PATH synthesis

package paths

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandHome(t *testing.T) {
	tests := []struct {
		name string
		dirs []string
		home string
		want []string
	}{
		{
			name: "mixed_entries",
			dirs: []string{"/opt/homebrew/bin", "~/.cargo/bin", "~/go/bin"},
			home: "/Users/ada",
			want: []string{"/opt/homebrew/bin", "/Users/ada/.cargo/bin", "/Users/ada/go/bin"},
		},
		{
			name: "no_home_drops_relative",
			dirs: []string{"/usr/local/bin", "~/.local/bin"},
			home: "",
			want: []string{"/usr/local/bin"},
		},
		{
			name: "empty_list",
			dirs: nil,
			home: "/Users/ada",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.dirs, tt.home))
		})
	}
}

func TestMergePath(t *testing.T) {
	tests := []struct {
		name    string
		dirs    []string
		current string
		want    string
	}{
		{
			name:    "prepends_in_declared_order",
			dirs:    []string{"/opt/homebrew/bin", "/usr/local/bin"},
			current: "/usr/bin:/bin",
			want:    "/opt/homebrew/bin:/usr/local/bin:/usr/bin:/bin",
		},
		{
			name:    "dedupes_against_existing_path",
			dirs:    []string{"/opt/homebrew/bin", "/usr/local/bin"},
			current: "/usr/local/bin:/usr/bin:/opt/homebrew/bin:/bin",
			want:    "/opt/homebrew/bin:/usr/local/bin:/usr/bin:/bin",
		},
		{
			name:    "dedupes_existing_duplicates",
			dirs:    []string{"/opt/homebrew/bin"},
			current: "/usr/bin:/bin:/usr/bin",
			want:    "/opt/homebrew/bin:/usr/bin:/bin",
		},
		{
			name:    "empty_current_path",
			dirs:    []string{"/opt/homebrew/bin", "/usr/local/bin"},
			current: "",
			want:    "/opt/homebrew/bin:/usr/local/bin",
		},
		{
			name:    "drops_empty_entries",
			dirs:    []string{"/opt/homebrew/bin"},
			current: "/usr/bin::/bin:",
			want:    "/opt/homebrew/bin:/usr/bin:/bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergePath(tt.dirs, tt.current))
		})
	}
}

func TestMergePathEachFallbackExactlyOnce(t *testing.T) {
	home := "/Users/ada"
	dirs := ExpandHome(DefaultFallbackDirs, home)
	merged := MergePath(dirs, "/usr/local/bin:/usr/bin:/bin")

	seen := make(map[string]int)
	for _, entry := range strings.Split(merged, ListSeparator) {
		seen[entry]++
	}
	for _, dir := range dirs {
		assert.Equal(t, 1, seen[dir], "fallback dir %q must appear exactly once", dir)
	}
}

func TestCountEntries(t *testing.T) {
	assert.Equal(t, 0, CountEntries(""))
	assert.Equal(t, 1, CountEntries("/bin"))
	assert.Equal(t, 3, CountEntries("/a:/b:/c"))
}

// Test Type: Unit Test
// Description: Tests for the config package - defaults, user file merging,
// and TOML rendering

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.Shell)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "VITE_DEV_SERVER_URL", cfg.MarkerVar)
	assert.Equal(t, []string{"VITE_"}, cfg.SkipPrefixes)
	assert.Equal(t, ".env", cfg.DotenvFile)
	assert.Contains(t, cfg.FallbackDirs, "/opt/homebrew/bin")
	assert.Contains(t, cfg.FallbackDirs, "~/.cargo/bin")
}

func TestLoadWithWorkingDirOverride(t *testing.T) {
	dir := t.TempDir()
	override := `
shell = "/bin/bash"
timeout = "2s"
skip_prefixes = ["VITE_", "WEBPACK_"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".envboot.toml"), []byte(override), 0644))

	// Keep XDG lookups away from the real home. adrg/xdg caches its
	// paths at init, so reload after changing the variable.
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/bin/bash", cfg.Shell)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"VITE_", "WEBPACK_"}, cfg.SkipPrefixes)
	// Unset keys keep their defaults
	assert.Equal(t, "VITE_DEV_SERVER_URL", cfg.MarkerVar)
	assert.Equal(t, ".env", cfg.DotenvFile)
}

func TestLoadBadUserFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".envboot.toml"), []byte("not = [valid"), 0644))

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	_, err = Load()
	assert.Error(t, err)
}

func TestTOMLRoundTrip(t *testing.T) {
	cfg := Default()

	out, err := cfg.TOML()
	require.NoError(t, err)

	assert.Contains(t, out, "timeout")
	assert.Contains(t, out, "5s")
	assert.Contains(t, out, "VITE_DEV_SERVER_URL")
	assert.Contains(t, out, "/opt/homebrew/bin")
}

func TestDefaultConfigContent(t *testing.T) {
	assert.Contains(t, DefaultConfigContent(), "fallback_dirs")
}

package shellenv

import (
	"context"
	"runtime"
	"time"

	"github.com/arthur-debert/envboot/pkg/envmap"
	"github.com/arthur-debert/envboot/pkg/executor"
	"github.com/arthur-debert/envboot/pkg/logging"
	"github.com/arthur-debert/envboot/pkg/paths"
	"github.com/rs/zerolog"
)

const (
	// DefaultShell is used when SHELL is unset. zsh has been the macOS
	// login shell since Catalina.
	DefaultShell = "/bin/zsh"

	// DefaultTimeout bounds the shell invocation. Slow rc files happen,
	// but startup cannot wait forever.
	DefaultTimeout = 5 * time.Second

	// DefaultMarkerVar is the dev-server variable whose presence means the
	// process was launched from a terminal dev session that already has a
	// full environment.
	DefaultMarkerVar = "VITE_DEV_SERVER_URL"

	// DefaultSkipPrefix marks keys that must never be imported from the
	// shell: a packaged build that picks up dev-server variables would try
	// to load its assets from a development server address instead of
	// bundled resources.
	DefaultSkipPrefix = "VITE_"

	// guiRestrictedOS is the platform where GUI-launched apps inherit a
	// minimal environment instead of the user's login environment.
	guiRestrictedOS = "darwin"
)

// Options configures a Loader. The zero value gives production behavior:
// real process environment, real shell spawn, 5 second timeout, VITE_
// filtering.
type Options struct {
	// Env is the environment table to read and mutate. Defaults to the
	// process environment.
	Env envmap.Env

	// Executor spawns the shell. Defaults to the os/exec executor.
	Executor executor.Executor

	// GOOS overrides the platform gate. Defaults to runtime.GOOS.
	GOOS string

	// Shell overrides shell selection. Defaults to SHELL from the
	// environment table, then DefaultShell.
	Shell string

	// Timeout bounds the shell invocation. Defaults to DefaultTimeout.
	Timeout time.Duration

	// MarkerVar is the dev-mode gate variable. Defaults to
	// DefaultMarkerVar.
	MarkerVar string

	// SkipKey decides, from the key name alone, whether a shell-sourced
	// entry is discarded before merging. Defaults to skipping
	// DefaultSkipPrefix keys.
	SkipKey func(key string) bool

	// FallbackDirs is the ordered candidate list for PATH synthesis when
	// the shell cannot be consulted. "~/" entries resolve against HOME.
	// Defaults to paths.DefaultFallbackDirs.
	FallbackDirs []string
}

// Loader recovers the interactive-login shell environment for a GUI-launched
// process. A single Loader is meant to run once, synchronously, during
// startup; it is not safe for concurrent use.
type Loader struct {
	env          envmap.Env
	exec         executor.Executor
	goos         string
	shell        string
	timeout      time.Duration
	markerVar    string
	skipKey      func(string) bool
	fallbackDirs []string
}

// New creates a Loader, filling unset options with production defaults.
func New(opts Options) *Loader {
	l := &Loader{
		env:          opts.Env,
		exec:         opts.Executor,
		goos:         opts.GOOS,
		shell:        opts.Shell,
		timeout:      opts.Timeout,
		markerVar:    opts.MarkerVar,
		skipKey:      opts.SkipKey,
		fallbackDirs: opts.FallbackDirs,
	}
	if l.env == nil {
		l.env = envmap.OS()
	}
	if l.exec == nil {
		l.exec = executor.New()
	}
	if l.goos == "" {
		l.goos = runtime.GOOS
	}
	if l.timeout <= 0 {
		l.timeout = DefaultTimeout
	}
	if l.markerVar == "" {
		l.markerVar = DefaultMarkerVar
	}
	if l.skipKey == nil {
		l.skipKey = SkipPrefixes(DefaultSkipPrefix)
	}
	if l.fallbackDirs == nil {
		l.fallbackDirs = paths.DefaultFallbackDirs
	}
	return l
}

// Load spawns the login shell, captures its environment, and merges it into
// the environment table. It never fails: every error is absorbed, logged,
// and answered with PATH synthesis, because startup must not block on
// environment bootstrap.
func (l *Loader) Load() {
	logger := logging.GetLogger("shell-env")

	if l.goos != guiRestrictedOS {
		logger.Debug().Str("goos", l.goos).Msg("Not a GUI-restricted platform, skipping")
		return
	}

	if _, ok := l.env.Lookup(l.markerVar); ok {
		logger.Debug().Str("marker", l.markerVar).Msg("Dev server session detected, skipping")
		return
	}

	entries, err := l.capture(context.Background())
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to capture shell environment, synthesizing PATH")
		l.fallbackPath(logger)
		return
	}

	loaded := 0
	for _, entry := range entries {
		if l.skipKey(entry.Key) {
			logger.Debug().Str("key", entry.Key).Msg("Skipping filtered variable")
			continue
		}
		// Shell-sourced values win over the minimal launch environment.
		l.env.Set(entry.Key, entry.Value)
		loaded++
	}

	logger.Info().Int("count", loaded).Msg("Loaded shell environment")
}

// Probe runs the shell invocation once and reports how many environment
// entries it yields, without mutating the environment table. Diagnostic
// commands use it to check that the login shell answers.
func (l *Loader) Probe(ctx context.Context) (int, error) {
	entries, err := l.capture(ctx)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// ResolveShell returns the shell a Loader would spawn: the override if set,
// then SHELL from the environment table, then DefaultShell. Diagnostic
// commands use it so their answer cannot drift from the loader's.
func ResolveShell(env envmap.Env, override string) string {
	if override != "" {
		return override
	}
	if shell := env.Get("SHELL"); shell != "" {
		return shell
	}
	return DefaultShell
}

// capture runs the shell and parses its environment dump. It is the
// Result-returning half of the never-throw contract: Load consumes the
// error and degrades.
func (l *Loader) capture(ctx context.Context) ([]Entry, error) {
	shell := ResolveShell(l.env, l.shell)

	inv := executor.Invocation{
		Path: shell,
		// Login AND interactive, so both profile and rc files are
		// sourced before the dump.
		Args:    []string{"-l", "-i", "-c", "echo " + Marker + " && env"},
		Env:     l.childEnv(shell),
		Timeout: l.timeout,
	}

	out, err := l.exec.Execute(ctx, inv)
	if err != nil {
		return nil, err
	}

	return Parse(string(out.Stdout)), nil
}

// childEnv builds the deliberately minimal environment the shell runs
// under: just enough identity and terminal context for rc files to behave,
// plus two hardening variables.
func (l *Loader) childEnv(shell string) []string {
	env := []string{"SHELL=" + shell, "TERM=xterm-256color"}

	for _, key := range []string{"HOME", "USER", "TMPDIR"} {
		if v, ok := l.env.Lookup(key); ok {
			env = append(env, key+"="+v)
		}
	}

	// Keep package-manager shims from kicking off an installer or update
	// prompt, and never let the shell's git integration ask for
	// credentials on a process with no terminal.
	env = append(env,
		"HOMEBREW_NO_AUTO_UPDATE=1",
		"GIT_TERMINAL_PROMPT=0",
	)

	return env
}

// fallbackPath writes a synthesized PATH built from well-known tool-install
// directories prepended to the current PATH. A degraded PATH beats a
// crashed application.
func (l *Loader) fallbackPath(logger zerolog.Logger) {
	dirs := paths.ExpandHome(l.fallbackDirs, l.env.Get("HOME"))
	merged := paths.MergePath(dirs, l.env.Get("PATH"))
	l.env.Set("PATH", merged)

	logger.Info().
		Int("entries", paths.CountEntries(merged)).
		Msg("Wrote fallback PATH")
}

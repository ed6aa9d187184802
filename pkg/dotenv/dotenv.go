package dotenv

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/envboot/pkg/envmap"
	"github.com/arthur-debert/envboot/pkg/logging"
)

const (
	// DefaultFilename is the conventional env file name resolved at the
	// working directory.
	DefaultFilename = ".env"

	// DefaultMarkerVar is the dev-server variable whose presence means a
	// terminal dev session already injected everything the env file would.
	DefaultMarkerVar = "VITE_DEV_SERVER_URL"
)

// Options configures a Loader. The zero value reads ./.env into the process
// environment.
type Options struct {
	// Env is the environment table to read and mutate. Defaults to the
	// process environment.
	Env envmap.Env

	// Dir is the directory holding the env file. Defaults to the current
	// working directory.
	Dir string

	// Filename overrides DefaultFilename.
	Filename string

	// MarkerVar is the dev-server variable whose presence disables the
	// loader. Defaults to DefaultMarkerVar.
	MarkerVar string
}

// Loader merges non-conflicting key/value pairs from a local env file into
// the environment table. Like the shell loader it runs once during startup
// and is not safe for concurrent use.
type Loader struct {
	env       envmap.Env
	dir       string
	filename  string
	markerVar string
}

// New creates a Loader, filling unset options with defaults.
func New(opts Options) *Loader {
	l := &Loader{
		env:       opts.Env,
		dir:       opts.Dir,
		filename:  opts.Filename,
		markerVar: opts.MarkerVar,
	}
	if l.env == nil {
		l.env = envmap.OS()
	}
	if l.filename == "" {
		l.filename = DefaultFilename
	}
	if l.markerVar == "" {
		l.markerVar = DefaultMarkerVar
	}
	return l
}

// Load reads the env file and writes each pair into the environment table
// unless the key already carries a non-empty value. It never fails: a
// missing file is a no-op and read errors are logged and swallowed.
func (l *Loader) Load() {
	logger := logging.GetLogger("dotenv")

	if _, ok := l.env.Lookup(l.markerVar); ok {
		logger.Debug().Str("marker", l.markerVar).Msg("Dev server session detected, skipping")
		return
	}

	dir := l.dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			logger.Warn().Err(err).Msg("Cannot resolve working directory")
			return
		}
		dir = cwd
	}
	path := filepath.Join(dir, l.filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info().Str("path", path).Msg("No env file, nothing to load")
		} else {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to read env file")
		}
		return
	}

	loaded := 0
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		// Values from the real environment always win over the file.
		if existing, present := l.env.Lookup(key); present && existing != "" {
			continue
		}
		l.env.Set(key, value)
		loaded++
	}

	logger.Info().Int("count", loaded).Str("path", path).Msg("Loaded env file")
}

// parseLine splits one env-file line into a key/value pair. Blank lines,
// comments, lines without "=", and lines whose "=" comes first are all
// rejected.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	eq := strings.Index(line, "=")
	if eq <= 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:eq])
	if key == "" {
		return "", "", false
	}
	value = stripQuotes(strings.TrimSpace(line[eq+1:]))
	return key, value, true
}

// stripQuotes removes one matching pair of surrounding double or single
// quotes. There is no escape processing: the quote character must not
// appear inside the wrapped text, otherwise the value is left raw.
func stripQuotes(value string) string {
	if len(value) < 2 {
		return value
	}
	quote := value[0]
	if quote != '"' && quote != '\'' {
		return value
	}
	if value[len(value)-1] != quote {
		return value
	}
	if strings.Count(value, string(quote)) != 2 {
		return value
	}
	return value[1 : len(value)-1]
}

package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/envboot/pkg/errors"
)

// tomlView is the user-facing TOML shape of a Config. Timeout renders as a
// duration string rather than nanoseconds.
type tomlView struct {
	Shell        string   `toml:"shell"`
	Timeout      string   `toml:"timeout"`
	MarkerVar    string   `toml:"marker_var"`
	SkipPrefixes []string `toml:"skip_prefixes"`
	DotenvFile   string   `toml:"dotenv_file"`
	FallbackDirs []string `toml:"fallback_dirs"`
}

// TOML renders the configuration as a TOML document, suitable for seeding a
// user config file.
func (c *Config) TOML() (string, error) {
	out, err := toml.Marshal(tomlView{
		Shell:        c.Shell,
		Timeout:      c.Timeout.String(),
		MarkerVar:    c.MarkerVar,
		SkipPrefixes: c.SkipPrefixes,
		DotenvFile:   c.DotenvFile,
		FallbackDirs: c.FallbackDirs,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render config")
	}
	return string(out), nil
}

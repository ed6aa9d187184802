package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/envboot/pkg/errors"
)

// UserConfigFile is the file name looked up in the XDG config directory and
// the working directory (as a dotfile).
const UserConfigFile = "envboot.toml"

// Config is the merged loader configuration: built-in defaults, then the
// user's XDG config file, then a working-directory override.
type Config struct {
	// Shell overrides shell selection; empty means use SHELL then the
	// platform default.
	Shell string `koanf:"shell"`

	// Timeout bounds the shell invocation.
	Timeout time.Duration `koanf:"timeout"`

	// MarkerVar is the dev-server gate variable.
	MarkerVar string `koanf:"marker_var"`

	// SkipPrefixes lists key prefixes never imported from the shell.
	SkipPrefixes []string `koanf:"skip_prefixes"`

	// DotenvFile is the env file name resolved at the working directory.
	DotenvFile string `koanf:"dotenv_file"`

	// FallbackDirs is the ordered PATH-synthesis candidate list.
	FallbackDirs []string `koanf:"fallback_dirs"`
}

// Load merges built-in defaults with the user's config files. Missing user
// files are fine; a file that exists but cannot be parsed is an error.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults (embedded envboot defaults.toml)
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. XDG config file, then working-directory override
	for _, path := range userConfigPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	}

	return unmarshal(k)
}

// Default returns the built-in defaults without touching the filesystem.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults are checked by tests; this cannot fail
		// at runtime.
		panic(err)
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(err)
	}
	return cfg
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// userConfigPaths returns the candidate user config files in merge order;
// later entries override earlier ones.
func userConfigPaths() []string {
	var paths []string
	if xdg.ConfigHome != "" {
		paths = append(paths, filepath.Join(xdg.ConfigHome, "envboot", UserConfigFile))
	}
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, "."+UserConfigFile))
	}
	return paths
}

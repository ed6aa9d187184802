package shellenv

import (
	"strings"

	"github.com/arthur-debert/envboot/pkg/envmap"
	"github.com/arthur-debert/envboot/pkg/logging"
)

// Marker is the token the shell prints before dumping its environment.
// Everything a chatty rc file writes before it (banners, motd, fortune
// output) is discarded.
const Marker = "__ENV_START__"

// Entry is one parsed KEY=VALUE pair from the shell's environment dump.
type Entry struct {
	Key   string
	Value string
}

// Parse extracts environment entries from captured shell output. Only text
// after the marker token is treated as environment data; a missing marker
// yields an empty result rather than an error. Lines without "=", or with
// "=" as the first character, are silently dropped.
func Parse(output string) []Entry {
	logger := logging.GetLogger("shell-env")

	idx := strings.Index(output, Marker)
	if idx < 0 {
		logger.Warn().Msg("Marker not found in shell output, treating as empty")
		return nil
	}

	section := output[idx+len(Marker):]

	var entries []Entry
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimRight(line, "\r")
		key, value, ok := envmap.Split(line)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}

	return entries
}

// SkipPrefixes returns a key predicate that reports true for keys carrying
// any of the given prefixes. The predicate is a pure function of the key
// name.
func SkipPrefixes(prefixes ...string) func(key string) bool {
	return func(key string) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				return true
			}
		}
		return false
	}
}

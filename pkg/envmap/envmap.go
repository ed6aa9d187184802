package envmap

import (
	"os"
	"sort"
	"strings"
)

// Env is the process environment table behind an explicit accessor, so the
// loaders can be pointed at an isolated table in tests instead of mutating
// real process state.
//
// Implementations are not safe for concurrent use. Both loaders perform
// unguarded read-modify-write on the table; callers running them from
// multiple goroutines must provide their own synchronization.
type Env interface {
	// Get returns the value for key, or "" if unset.
	Get(key string) string

	// Lookup returns the value for key and whether it is set at all.
	Lookup(key string) (string, bool)

	// Set writes key=value into the table, overwriting any existing value.
	Set(key, value string)

	// Environ returns the table as KEY=VALUE strings.
	Environ() []string
}

// osEnv is the process-backed environment table.
type osEnv struct{}

// OS returns the Env backed by the real process environment.
func OS() Env {
	return osEnv{}
}

func (osEnv) Get(key string) string {
	return os.Getenv(key)
}

func (osEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnv) Set(key, value string) {
	// os.Setenv only fails on invalid keys, which the loaders never produce
	_ = os.Setenv(key, value)
}

func (osEnv) Environ() []string {
	return os.Environ()
}

// Map is an in-memory environment table for tests.
type Map map[string]string

// NewMap returns an empty in-memory environment table.
func NewMap() Map {
	return make(Map)
}

func (m Map) Get(key string) string {
	return m[key]
}

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Map) Set(key, value string) {
	m[key] = value
}

func (m Map) Environ() []string {
	entries := make([]string, 0, len(m))
	for k, v := range m {
		entries = append(entries, k+"="+v)
	}
	sort.Strings(entries)
	return entries
}

// Split splits a KEY=VALUE string on the first "=". It returns ok=false for
// strings with no "=" or with "=" as the first character; values may
// themselves contain "=".
func Split(entry string) (key, value string, ok bool) {
	eq := strings.Index(entry, "=")
	if eq <= 0 {
		return "", "", false
	}
	return entry[:eq], entry[eq+1:], true
}

// Test Type: Unit Test
// Description: Tests for the envmap package - environment table accessors

package envmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapBasics(t *testing.T) {
	m := NewMap()

	_, ok := m.Lookup("FOO")
	assert.False(t, ok)
	assert.Empty(t, m.Get("FOO"))

	m.Set("FOO", "bar")
	assert.Equal(t, "bar", m.Get("FOO"))

	v, ok := m.Lookup("FOO")
	assert.True(t, ok)
	assert.Equal(t, "bar", v)

	// Overwrite
	m.Set("FOO", "baz")
	assert.Equal(t, "baz", m.Get("FOO"))
}

func TestMapEnviron(t *testing.T) {
	m := Map{"B": "2", "A": "1", "EMPTY": ""}
	assert.Equal(t, []string{"A=1", "B=2", "EMPTY="}, m.Environ())
}

func TestOSRoundTrip(t *testing.T) {
	t.Setenv("ENVBOOT_TEST_KEY", "before")

	env := OS()
	assert.Equal(t, "before", env.Get("ENVBOOT_TEST_KEY"))

	env.Set("ENVBOOT_TEST_KEY", "after")
	v, ok := env.Lookup("ENVBOOT_TEST_KEY")
	require.True(t, ok)
	assert.Equal(t, "after", v)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		entry     string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{
			name:      "simple",
			entry:     "FOO=bar",
			wantKey:   "FOO",
			wantValue: "bar",
			wantOK:    true,
		},
		{
			name:      "value_contains_equals",
			entry:     "LESSOPEN=| /usr/bin/lesspipe %s",
			wantKey:   "LESSOPEN",
			wantValue: "| /usr/bin/lesspipe %s",
			wantOK:    true,
		},
		{
			name:      "double_equals",
			entry:     "A=b=c",
			wantKey:   "A",
			wantValue: "b=c",
			wantOK:    true,
		},
		{
			name:      "empty_value",
			entry:     "FOO=",
			wantKey:   "FOO",
			wantValue: "",
			wantOK:    true,
		},
		{
			name:   "no_equals",
			entry:  "not an assignment",
			wantOK: false,
		},
		{
			name:   "equals_first",
			entry:  "=value",
			wantOK: false,
		},
		{
			name:   "empty_line",
			entry:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := Split(tt.entry)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKey, key)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

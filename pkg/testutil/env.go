package testutil

import "github.com/arthur-debert/envboot/pkg/envmap"

// Env builds an isolated in-memory environment table seeded with pairs.
func Env(pairs map[string]string) envmap.Map {
	m := envmap.NewMap()
	for k, v := range pairs {
		m.Set(k, v)
	}
	return m
}

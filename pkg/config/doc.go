// Package config merges envboot's built-in defaults with the user's TOML
// config files: $XDG_CONFIG_HOME/envboot/envboot.toml first, then a
// .envboot.toml in the working directory, later files overriding earlier
// ones.
package config

package main

// User-facing command descriptions, kept together so wording stays
// consistent across the command tree.
const (
	MsgRootShort = "Recover the login shell environment for GUI-launched apps"
	MsgRootLong  = `envboot recovers the full interactive-login environment (PATH additions
from profile and rc files, tool-manager shims) that macOS denies to
processes launched outside a terminal, and merges .env convenience values
for dev runs.

It never fails: when the shell cannot be consulted, envboot degrades to a
PATH synthesized from well-known tool-install directories.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	MsgLoadShort = "Run both loaders against the process environment"
	MsgLoadLong  = `Run the shell environment loader and the .env loader against this
process's environment, then print a one-line summary.`

	MsgExecShort = "Bootstrap the environment, then run a command"
	MsgExecLong  = `Run both loaders, then execute COMMAND with the merged environment.
This is how agent or worker processes get PATH-resolved tools without a
terminal ancestor.`

	MsgShowShort = "Print the environment the loaders would produce"
	MsgShowLong  = `Run both loaders against an isolated copy of the process environment and
print the resulting table. The real process environment is not modified.`

	MsgDoctorShort = "Check that environment bootstrap can work on this host"
	MsgDoctorLong  = `Probe the pieces environment bootstrap depends on: config files parse,
the login shell resolves and answers within the timeout, and the .env file
is readable if present.`

	MsgGenConfigShort = "Print the envboot configuration as TOML"
	MsgGenConfigLong  = `Print the built-in default configuration, or the effective merged
configuration with --effective, as a TOML document suitable for
$XDG_CONFIG_HOME/envboot/envboot.toml.`

	// MsgUsageTemplate is the cobra usage template with bold uppercase
	// section headings (see formatting.go for the template funcs).
	MsgUsageTemplate = `{{bold (upper "Usage:")}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{bold (upper "Aliases:")}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{bold (upper "Examples:")}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{bold (upper "Available Commands:")}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{bold (upper "Flags:")}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{bold (upper "Global Flags:")}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
)

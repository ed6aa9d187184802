package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/envboot/pkg/envmap"
)

var keyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

func newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Long:  MsgShowLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Work on an isolated copy so inspecting the result never
			// mutates this process.
			env := envmap.NewMap()
			for _, entry := range os.Environ() {
				if key, value, ok := envmap.Split(entry); ok {
					env.Set(key, value)
				}
			}

			runLoaders(loadConfig(), env)

			switch format {
			case "yaml":
				return printYAML(cmd, env)
			case "text":
				return printText(cmd, env)
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")
	return cmd
}

func printYAML(cmd *cobra.Command, env envmap.Map) error {
	out, err := yaml.Marshal(map[string]string(env))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func printText(cmd *cobra.Command, env envmap.Map) error {
	styled := isatty.IsTerminal(os.Stdout.Fd()) &&
		termenv.EnvColorProfile() != termenv.Ascii

	for _, entry := range env.Environ() {
		key, value, ok := envmap.Split(entry)
		if !ok {
			continue
		}
		if styled {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", keyStyle.Render(key), value)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, value)
		}
	}
	return nil
}

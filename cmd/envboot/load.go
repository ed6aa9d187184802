package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/envboot/pkg/config"
	"github.com/arthur-debert/envboot/pkg/envmap"
	"github.com/arthur-debert/envboot/pkg/paths"
)

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: MsgLoadShort,
		Long:  MsgLoadLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := envmap.OS()
			runLoaders(loadConfig(), env)

			fmt.Fprintf(cmd.OutOrStdout(),
				"environment ready: %d variables, PATH has %d entries\n",
				len(env.Environ()), paths.CountEntries(env.Get("PATH")))
			return nil
		},
	}
}

// runLoaders runs the shell loader before the dotenv loader, matching the
// startup order a host application uses: shell values first, file values
// only for keys still unset.
func runLoaders(cfg *config.Config, env envmap.Env) {
	shellLoader, dotenvLoader := newLoaders(cfg, env)
	shellLoader.Load()
	dotenvLoader.Load()
}

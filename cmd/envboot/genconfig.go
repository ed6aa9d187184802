package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/envboot/pkg/config"
)

func newGenConfigCmd() *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !effective {
				// The annotated defaults file, comments included.
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigContent())
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			out, err := cfg.TOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false,
		"Print the merged effective configuration instead of the defaults")
	return cmd
}

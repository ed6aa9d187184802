package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/envboot/internal/version"
	"github.com/arthur-debert/envboot/pkg/config"
	"github.com/arthur-debert/envboot/pkg/dotenv"
	"github.com/arthur-debert/envboot/pkg/envmap"
	"github.com/arthur-debert/envboot/pkg/logging"
	"github.com/arthur-debert/envboot/pkg/shellenv"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "envboot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newExecCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("envboot version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

// loadConfig loads the merged configuration, degrading to built-in defaults
// when user files are broken. Bootstrap must not fail because of a bad
// config file.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Config load failed, using built-in defaults")
		return config.Default()
	}
	return cfg
}

// newLoaders wires both loaders against the given environment table.
func newLoaders(cfg *config.Config, env envmap.Env) (*shellenv.Loader, *dotenv.Loader) {
	shellLoader := shellenv.New(shellenv.Options{
		Env:          env,
		Shell:        cfg.Shell,
		Timeout:      cfg.Timeout,
		MarkerVar:    cfg.MarkerVar,
		SkipKey:      shellenv.SkipPrefixes(cfg.SkipPrefixes...),
		FallbackDirs: cfg.FallbackDirs,
	})
	dotenvLoader := dotenv.New(dotenv.Options{
		Env:       env,
		Filename:  cfg.DotenvFile,
		MarkerVar: cfg.MarkerVar,
	})
	return shellLoader, dotenvLoader
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/envboot/pkg/config"
	"github.com/arthur-debert/envboot/pkg/envmap"
	"github.com/arthur-debert/envboot/pkg/shellenv"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: MsgDoctorShort,
		Long:  MsgDoctorLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0

			// Config files
			cfg, err := config.Load()
			if err != nil {
				pterm.Warning.Printfln("config: %v (using built-in defaults)", err)
				cfg = config.Default()
			} else {
				pterm.Success.Println("config: loaded")
			}

			// Platform
			if runtime.GOOS == "darwin" {
				pterm.Success.Println("platform: darwin (loader active)")
			} else {
				pterm.Info.Printfln("platform: %s (shell loader is a no-op here)", runtime.GOOS)
			}

			// Shell resolution, the same chain the loader spawns with
			shell := shellenv.ResolveShell(envmap.OS(), cfg.Shell)
			if _, err := os.Stat(shell); err != nil {
				pterm.Error.Printfln("shell: %s not found", shell)
				failed++
			} else {
				pterm.Success.Printfln("shell: %s", shell)
			}

			// Login-shell probe, bounded by the configured timeout
			loader, _ := newLoaders(cfg, nil)
			count, err := loader.Probe(context.Background())
			if err != nil {
				pterm.Error.Printfln("shell probe: %v", err)
				failed++
			} else {
				pterm.Success.Printfln("shell probe: %d variables in %s", count, cfg.Timeout)
			}

			// .env file
			cwd, err := os.Getwd()
			if err == nil {
				dotenvPath := filepath.Join(cwd, cfg.DotenvFile)
				if _, err := os.Stat(dotenvPath); err == nil {
					pterm.Success.Printfln("dotenv: %s present", dotenvPath)
				} else {
					pterm.Info.Printfln("dotenv: no %s (that is fine)", cfg.DotenvFile)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}

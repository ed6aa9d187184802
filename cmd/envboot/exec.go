package main

import (
	stderrors "errors"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/envboot/pkg/envmap"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec COMMAND [ARGS...]",
		Short: MsgExecShort,
		Long:  MsgExecLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := envmap.OS()
			runLoaders(loadConfig(), env)

			child := exec.Command(args[0], args[1:]...)
			child.Env = env.Environ()
			child.Stdin = os.Stdin
			child.Stdout = os.Stdout
			child.Stderr = os.Stderr

			err := child.Run()
			var exitErr *exec.ExitError
			if stderrors.As(err, &exitErr) {
				// Propagate the child's status instead of reporting
				// a wrapper failure.
				os.Exit(exitErr.ExitCode())
			}
			return err
		},
	}
}

package main

import (
	"errors"
	"fmt"

	"github.com/joshuapare/shmkit/pkg/types"
	"github.com/joshuapare/shmkit/shm"
	"github.com/spf13/cobra"
)

var rmForce bool

func init() {
	cmd := newRmCmd()
	cmd.Flags().BoolVarP(&rmForce, "force", "f", false, "Ignore absent segments")
	rootCmd.AddCommand(cmd)
}

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <name>...",
		Short: "Remove shared memory segments from the namespace",
		Long: `The rm command unlinks named segments. Processes that already have the
segment mapped keep their mappings; the name just stops resolving for new
opens.

Example:
  shmctl rm /telemetry
  shmctl rm /a /b /c --force`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(args)
		},
	}
	return cmd
}

func runRm(args []string) error {
	var failed int
	for _, name := range args {
		err := shm.Remove(name)
		switch {
		case err == nil:
			printVerbose("Removed %s\n", name)
		case rmForce && errors.Is(err, types.ErrNotFound):
			printVerbose("Skipped %s (not found)\n", name)
		default:
			printError("%s: %v\n", name, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("failed to remove %d segment(s)", failed)
	}
	return nil
}

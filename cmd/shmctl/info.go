package main

import (
	"fmt"

	"github.com/joshuapare/shmkit/shm"
	"github.com/joshuapare/shmkit/shm/arena"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Show segment metadata and arena status",
		Long: `The info command opens an existing segment and reports its size plus
whether the segment starts with a valid arena control block.

Example:
  shmctl info /telemetry
  shmctl info /telemetry --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	name := args[0]

	printVerbose("Opening segment: %s\n", name)

	seg, err := shm.Open(name, shm.OpenOnly, 0)
	if err != nil {
		return fmt.Errorf("failed to open segment: %w", err)
	}
	defer seg.Close()

	a, arenaErr := arena.Attach(seg.Bytes())

	if jsonOut {
		result := map[string]interface{}{
			"name": name,
			"size": seg.Size(),
		}
		if arenaErr == nil {
			result["arena"] = map[string]interface{}{
				"used":     a.Used(),
				"capacity": a.Capacity(),
			}
		}
		return printJSON(result)
	}

	printInfo("\nSegment Information:\n")
	printInfo("  Name: %s\n", name)
	printInfo("  Size: %s (%s bytes)\n", humanSize(seg.Size()), num.Sprintf("%d", seg.Size()))
	if arenaErr != nil {
		printInfo("  Arena: none (%v)\n", arenaErr)
		return nil
	}
	printInfo("  Arena:\n")
	printInfo("    Used: %s bytes\n", num.Sprintf("%d", uint64(a.Used())))
	printInfo("    Capacity: %s bytes\n", num.Sprintf("%d", uint64(a.Capacity())))
	if a.Capacity() > 0 {
		printInfo("    Utilization: %.1f%%\n", 100*float64(a.Used())/float64(a.Capacity()))
	}
	return nil
}

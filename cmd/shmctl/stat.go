package main

import (
	"fmt"

	"github.com/joshuapare/shmkit/shm"
	"github.com/joshuapare/shmkit/shm/arena"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatCmd())
}

func newStatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat <name>",
		Short: "Show arena allocation statistics for a segment",
		Long: `The stat command attaches to the arena control block inside a segment
and reports the allocation cursor. Unlike info, it fails when the segment does
not hold an arena.

Example:
  shmctl stat /cache
  shmctl stat /cache --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(args)
		},
	}
	return cmd
}

func runStat(args []string) error {
	name := args[0]

	seg, err := shm.Open(name, shm.OpenOnly, 0)
	if err != nil {
		return fmt.Errorf("failed to open segment: %w", err)
	}
	defer seg.Close()

	a, err := arena.Attach(seg.Bytes())
	if err != nil {
		return fmt.Errorf("no arena in %s: %w", name, err)
	}

	used := uint64(a.Used())
	capacity := uint64(a.Capacity())
	free := capacity - used

	if jsonOut {
		return printJSON(map[string]interface{}{
			"name":     name,
			"segment":  seg.Size(),
			"used":     used,
			"capacity": capacity,
			"free":     free,
		})
	}

	printInfo("\nArena Statistics: %s\n", name)
	printInfo("  Segment size: %s\n", humanSize(seg.Size()))
	printInfo("  Capacity: %s bytes\n", num.Sprintf("%d", capacity))
	printInfo("  Used: %s bytes\n", num.Sprintf("%d", used))
	printInfo("  Free: %s bytes\n", num.Sprintf("%d", free))
	if capacity > 0 {
		printInfo("  Utilization: %.1f%%\n", 100*float64(used)/float64(capacity))
	}
	return nil
}

package main

import (
	"fmt"
	"sort"

	"github.com/joshuapare/shmkit/shm"
	"github.com/spf13/cobra"
)

var lsLong bool

func init() {
	cmd := newLsCmd()
	cmd.Flags().BoolVarP(&lsLong, "long", "l", false, "Show segment sizes")
	rootCmd.AddCommand(cmd)
}

func newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List shared memory segments",
		Long: `The ls command lists the named segments present in the platform
namespace. With --long each segment is opened and mapped to report its size.

Example:
  shmctl ls
  shmctl ls --long`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLs()
		},
	}
	return cmd
}

func runLs() error {
	names, err := shm.List()
	if err != nil {
		return fmt.Errorf("failed to list segments: %w", err)
	}
	sort.Strings(names)

	if !lsLong {
		if jsonOut {
			return printJSON(map[string]interface{}{"segments": names})
		}
		for _, name := range names {
			printInfo("%s\n", name)
		}
		return nil
	}

	type entry struct {
		Name string `json:"name"`
		Size int64  `json:"size"`
	}
	var entries []entry
	for _, name := range names {
		seg, err := shm.Open(name, shm.OpenOnly, 0)
		if err != nil {
			// Racing removals are expected while listing.
			printVerbose("Skipping %s: %v\n", name, err)
			continue
		}
		entries = append(entries, entry{Name: name, Size: seg.Size()})
		seg.Close()
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"segments": entries})
	}
	for _, e := range entries {
		printInfo("%-40s %12s\n", e.Name, num.Sprintf("%d", e.Size))
	}
	return nil
}

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Stamped by the release build; the VCS fallbacks below cover plain
// `go build` checkouts.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		rev, when := commit, date
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				switch s.Key {
				case "vcs.revision":
					if rev == "none" {
						rev = s.Value
					}
				case "vcs.time":
					if when == "unknown" {
						when = s.Value
					}
				}
			}
		}

		if jsonOut {
			return printJSON(map[string]string{
				"version":  version,
				"commit":   rev,
				"built":    when,
				"go":       runtime.Version(),
				"platform": runtime.GOOS + "/" + runtime.GOARCH,
			})
		}

		fmt.Printf("shmctl %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Printf("  commit: %s\n", rev)
		fmt.Printf("  built:  %s\n", when)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

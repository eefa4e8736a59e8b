package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

// num formats integers with grouping separators for the human-readable views.
var num = message.NewPrinter(language.English)

var rootCmd = &cobra.Command{
	Use:   "shmctl",
	Short: "Inspect and manage named shared memory segments",
	Long: `shmctl is a tool for creating, inspecting, and removing named shared
memory segments, including the resident arena metadata that segment-based
applications place inside them.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Output helpers shared by every subcommand. printInfo and printVerbose go
// through the grouping printer so byte counts and offsets render readably;
// printError and --json output bypass it.

// printInfo writes normal output. Silenced by --quiet.
func printInfo(format string, args ...any) {
	if quiet {
		return
	}
	num.Fprintf(os.Stdout, format, args...)
}

// printVerbose writes diagnostic detail shown only under --verbose.
func printVerbose(format string, args ...any) {
	if !verbose || quiet {
		return
	}
	num.Fprintf(os.Stdout, format, args...)
}

// printError writes to stderr regardless of --quiet.
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printJSON renders v indented on stdout for --json consumers.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// humanSize renders a byte count in the nearest binary unit.
func humanSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d bytes", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KiB", float64(n)/1024)
	case n < 1024*1024*1024:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GiB", float64(n)/(1024*1024*1024))
	}
}

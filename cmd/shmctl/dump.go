package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/shmkit/internal/hexdump"
	"github.com/joshuapare/shmkit/shm"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
)

var (
	dumpOffset int64
	dumpLength int64
	dumpRaw    bool
	dumpGzip   bool
	dumpOut    string
	dumpFull   bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().Int64Var(&dumpOffset, "offset", 0, "Byte offset to start at")
	cmd.Flags().Int64Var(&dumpLength, "length", 0, "Bytes to dump (0 = to end of segment)")
	cmd.Flags().BoolVar(&dumpRaw, "raw", false, "Write raw bytes instead of a hex dump")
	cmd.Flags().BoolVar(&dumpGzip, "gzip", false, "Gzip-compress raw output (implies --raw)")
	cmd.Flags().StringVarP(&dumpOut, "out", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&dumpFull, "full", false, "Do not fold runs of zero lines")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <name>",
		Short: "Dump segment contents as hex or raw bytes",
		Long: `The dump command reads a range of a segment and writes it as an
offset-annotated hex dump, or as raw bytes for snapshotting. Raw output can be
gzip-compressed on the way out.

Example:
  shmctl dump /telemetry
  shmctl dump /telemetry --offset 64 --length 256
  shmctl dump /telemetry --raw --gzip -o snapshot.bin.gz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	name := args[0]

	seg, err := shm.Open(name, shm.OpenOnly, 0)
	if err != nil {
		return fmt.Errorf("failed to open segment: %w", err)
	}
	defer seg.Close()

	data := seg.Bytes()
	if dumpOffset < 0 || dumpOffset > int64(len(data)) {
		return fmt.Errorf("offset %d outside segment of %d bytes", dumpOffset, len(data))
	}
	data = data[dumpOffset:]
	if dumpLength > 0 {
		if dumpLength > int64(len(data)) {
			return fmt.Errorf("length %d exceeds remaining %d bytes", dumpLength, len(data))
		}
		data = data[:dumpLength]
	}

	var w io.Writer = os.Stdout
	if dumpOut != "" {
		f, err := os.Create(dumpOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if dumpGzip {
		dumpRaw = true
		gz := gzip.NewWriter(w)
		defer gz.Close()
		w = gz
	}

	if dumpRaw {
		printVerbose("Writing %d raw bytes from %s\n", len(data), name)
		_, err := w.Write(data)
		return err
	}

	if dumpFull {
		return hexdump.Write(w, dumpOffset, data)
	}
	return hexdump.WriteFolded(w, dumpOffset, data)
}

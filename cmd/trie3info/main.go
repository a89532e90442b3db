// Command trie3info prints a diagnostic summary of a serialized trie3
// image, the way the original implementation's UTRIE3_DEBUG build would
// dump utrie3_printLengths output, but as a standalone tool rather than a
// debug build flag.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foliotrie/go-trie3/trie3"
	"github.com/foliotrie/go-trie3/trie3/diag"
)

var asCBOR bool

func main() {
	root := &cobra.Command{
		Use:   "trie3info <file>",
		Short: "Inspect a serialized trie3 image",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	root.Flags().BoolVar(&asCBOR, "cbor", false, "emit the report as CBOR instead of text")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("trie3info: %w", err)
	}

	version := trie3.Version(data, true)
	if version != 3 {
		return fmt.Errorf("trie3info: %s: unsupported trie version %d", args[0], version)
	}

	t, err := deserializeEither(data)
	if err != nil {
		return fmt.Errorf("trie3info: %s: %w", args[0], err)
	}

	report := diag.Summarize(t)
	if asCBOR {
		out, err := diag.EncodeCBOR(report)
		if err != nil {
			return fmt.Errorf("trie3info: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "name:            %s\n", report.Name)
	fmt.Fprintf(cmd.OutOrStdout(), "width:           %s\n", report.Width)
	fmt.Fprintf(cmd.OutOrStdout(), "indexLength:     %d\n", report.IndexLength)
	fmt.Fprintf(cmd.OutOrStdout(), "dataLength:      %d (%d bits)\n", report.DataLength, report.DataLenBits)
	fmt.Fprintf(cmd.OutOrStdout(), "highStart:       U+%06X\n", report.HighStart)
	fmt.Fprintf(cmd.OutOrStdout(), "initialValue:    %d\n", report.InitialValue)
	fmt.Fprintf(cmd.OutOrStdout(), "highValue:       %d\n", report.HighValue)
	fmt.Fprintf(cmd.OutOrStdout(), "errorValue:      %d\n", report.ErrorValue)
	fmt.Fprintf(cmd.OutOrStdout(), "initialCount:    %d code points\n", report.InitialCount)
	fmt.Fprintf(cmd.OutOrStdout(), "distinctValues:  %d\n", report.DistinctValues)
	fmt.Fprintf(cmd.OutOrStdout(), "serializedBytes: %d\n", report.SerializedBytes)
	return nil
}

// deserializeEither tries both value widths, since a bare image carries no
// width outside its own options field and Deserialize insists the caller
// name the width it expects.
func deserializeEither(data []byte) (*trie3.Trie, error) {
	if t, err := trie3.Deserialize(trie3.Width16, data); err == nil {
		return t, nil
	}
	return trie3.Deserialize(trie3.Width32, data)
}

/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netfossil/nrbf/pkg/records"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Decode a stream and print its records",
	Long: `Decode a serialized stream and print every record in stream
order, one line per record, followed by any dangling references.

Example:
  nrbf dump save0.sav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		header, graph, err := records.Decode(data)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", args[0], err)
		}

		cmd.Printf("stream version %d.%d, root id %d, %d records, %d objects\n",
			header.MajorVersion, header.MinorVersion, header.RootID,
			len(graph.Records), len(graph.Objects))

		for i, rec := range graph.Records {
			cmd.Printf("%4d  %s\n", i, describeRecord(rec))
		}

		for _, ref := range graph.Unresolved() {
			cmd.Printf("warning: dangling reference to id %d\n", ref.IDRef)
		}
		return nil
	},
}

// describeRecord renders one record as a single line.
func describeRecord(rec records.Record) string {
	switch r := rec.(type) {
	case *records.StreamHeader:
		return fmt.Sprintf("%s root=%d", r.RecordType(), r.RootID)
	case *records.BinaryLibrary:
		return fmt.Sprintf("%s id=%d %q", r.RecordType(), r.LibraryID, r.LibraryName)
	case *records.BinaryObjectString:
		return fmt.Sprintf("%s id=%d %q", r.RecordType(), r.ObjectID, truncate(r.Value, 60))
	case *records.MemberReference:
		return fmt.Sprintf("%s ref=%d (%s)", r.RecordType(), r.IDRef, r.State())
	case *records.MemberPrimitiveTyped:
		return fmt.Sprintf("%s %s=%v", r.RecordType(), r.PrimitiveType, r.Value)
	case *records.ObjectNull:
		return fmt.Sprintf("%s count=%d", r.RecordType(), r.Count)
	case *records.ClassRecord:
		names := make([]string, len(r.MemberNames))
		copy(names, r.MemberNames)
		return fmt.Sprintf("%s id=%d %s{%s}", r.RecordType(), r.ObjectID,
			r.ClassName, strings.Join(names, ", "))
	case *records.ArraySinglePrimitive:
		return fmt.Sprintf("%s id=%d %s[%d]", r.RecordType(), r.ObjectID, r.PrimitiveType, r.Length)
	case *records.ArraySingleObject:
		return fmt.Sprintf("%s id=%d object[%d]", r.RecordType(), r.ObjectID, r.Length)
	case *records.ArraySingleString:
		return fmt.Sprintf("%s id=%d string[%d]", r.RecordType(), r.ObjectID, r.Length)
	default:
		return rec.RecordType().String()
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

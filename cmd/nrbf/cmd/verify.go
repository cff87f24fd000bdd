/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netfossil/nrbf/pkg/records"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Check that a stream decodes cleanly",
	Long: `Decode a serialized stream and report whether it is well
formed. Exits non-zero on any decode failure, printing the failing
record type and byte offsets.

With --strict, dangling references also fail verification.

Examples:
  nrbf verify save0.sav
  nrbf verify --strict save0.sav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		_, graph, err := records.Decode(data)
		if err != nil {
			var de *records.DecodeError
			if errors.As(err, &de) {
				return fmt.Errorf("%s: bad %s record at offset 0x%x (failed at 0x%x): %w",
					args[0], de.RecordType, de.Start, de.Offset, de.Err)
			}
			return fmt.Errorf("%s: %w", args[0], err)
		}

		unresolved := graph.Unresolved()
		cmd.Printf("%s: %d records, %d objects, %d unresolved references\n",
			args[0], len(graph.Records), len(graph.Objects), len(unresolved))

		if strict && len(unresolved) > 0 {
			for _, ref := range unresolved {
				cmd.Printf("dangling reference to id %d\n", ref.IDRef)
			}
			return fmt.Errorf("%s: %d dangling references", args[0], len(unresolved))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Bool("strict", false, "Fail on dangling references")
}

//go:build !tinygo

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lockbox/internal/record"
)

var traceKind string

var traceCmd = &cobra.Command{
	Use:   "trace FILE",
	Short: "Print a recorded trace.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := record.Read(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		n := 0
		for _, e := range events {
			if traceKind != "" && e.Kind != traceKind {
				continue
			}
			fmt.Fprintln(out, e)
			n++
		}
		fmt.Fprintf(out, "%d events\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().StringVar(&traceKind, "kind", "", "Only print events of this kind (key or transition).")
}

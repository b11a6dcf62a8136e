package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceNEC/pkg/design"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available antenna designs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	designs := design.All()

	fmt.Printf("Available designs (%d):\n\n", len(designs))
	for _, d := range designs {
		fmt.Printf("  %-15s %-24s %s\n", d.Name(), d.FileName(), d.Summary())
	}
	if verbose {
		fmt.Printf("\nUse 'nec2gen params <design>' to see tunable parameters.\n")
	}
	return nil
}

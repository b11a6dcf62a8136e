package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceNEC/pkg/design"
	"github.com/spf13/cobra"
)

var paramsCmd = &cobra.Command{
	Use:   "params <design>",
	Short: "Show the tunable parameters of a design",
	Long: `Show every parameter a design accepts through 'gen --set', with its
default value. Lengths are shown in meters and inches and accept unit
suffixes when overridden.

Examples:
  nec2gen params folded-dipole
  nec2gen params cheap-yagi --set velocity-factor=0.94`,
	Args: cobra.ExactArgs(1),
	RunE: runParams,
}

var paramOverrides []string

func init() {
	rootCmd.AddCommand(paramsCmd)

	paramsCmd.Flags().StringArrayVar(&paramOverrides, "set", nil,
		"override a parameter before listing (name=value, repeatable)")
}

func runParams(cmd *cobra.Command, args []string) error {
	d, err := design.Lookup(args[0])
	if err != nil {
		return err
	}
	if err := applyOverrides(cmd.Context(), d, paramOverrides); err != nil {
		return err
	}

	fmt.Printf("%s: %s\n\n", d.Name(), d.Summary())
	for _, p := range d.Params() {
		fmt.Printf("  %-20s %-28s %s\n", p.Name, p.String(), p.Help)
	}
	return nil
}

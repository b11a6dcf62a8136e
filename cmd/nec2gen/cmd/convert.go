package cmd

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceNEC/pkg/units"
	"github.com/spf13/cobra"
)

var defaultUnit string

var convertCmd = &cobra.Command{
	Use:   "convert <length>",
	Short: "Convert a length with units to meters and inches",
	Long: `Parse a length such as "5 3/8 in", "40.25\"", "102 cm" or "0.5" and
print it in meters and inches. A bare number uses --unit. Negative lengths
go after -- so they are not read as flags.

Examples:
  nec2gen convert "5 3/8 in"
  nec2gen convert 3.5 ft
  nec2gen convert --unit in 0.25
  nec2gen convert -- -0.4826 m`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&defaultUnit, "unit", "u", "m",
		"unit for lengths given without one (m, cm, in, ft)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	unit, err := units.LookupUnit(defaultUnit)
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	q, err := units.ParseQuantity(input, unit)
	if err != nil {
		return err
	}

	meters := q.Meters()
	fmt.Printf("%s = %.6f m = %.4f in\n", input, meters, units.MetersToInches(meters))
	if verbose {
		source := "default"
		if q.Explicit {
			source = "explicit"
		}
		fmt.Printf("  value %g %s (%s unit)\n", q.Value, q.Unit, source)
	}
	return nil
}

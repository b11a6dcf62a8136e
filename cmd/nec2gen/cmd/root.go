package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceNEC/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "nec2gen",
	Short: "NEC2 card stack generator for wire antennas",
	Long: `Generate NEC2 input files (card stacks) for wire antennas described as
straight wires and circular arcs. Every design carries literal defaults, so
generating one with no overrides reproduces the reference model exactly.

Examples:
  nec2gen list                                   # Show available designs
  nec2gen gen folded-dipole                      # Write 2m-folded-dipole.nec
  nec2gen gen fd-yagi --set "bend-radius=3/4 in" --echo
  nec2gen params cheap-yagi                      # Show tunable parameters
  nec2gen convert "5 3/8 in"                     # Convert a length to meters`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
}

// setupLogging attaches a run-scoped logger to the command's context.
func setupLogging(cmd *cobra.Command, args []string) error {
	if !logging.ValidLevel(logLevel) {
		return fmt.Errorf("invalid --log-level %q", logLevel)
	}
	if !logging.ValidFormat(logFormat) {
		return fmt.Errorf("invalid --log-format %q", logFormat)
	}

	level := logLevel
	if verbose {
		level = "debug"
	}
	base := logging.New(logging.Config{
		Level:  level,
		Format: logFormat,
		Output: cmd.ErrOrStderr(),
	})
	ctx, log := logging.WithRunLogger(cmd.Context(), base)
	cmd.SetContext(ctx)

	log.Debug(ctx, "starting", logging.String("command", cmd.CommandPath()))
	return nil
}

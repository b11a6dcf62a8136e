package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceNEC/internal/logging"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/deck"
	"github.com/OpenTraceLab/OpenTraceNEC/pkg/design"
	"github.com/spf13/cobra"
)

var (
	genOverrides []string
	outputPath   string
	outDir       string
	echoDeck     bool
	genAll       bool
)

var genCmd = &cobra.Command{
	Use:   "gen [design]",
	Short: "Generate the NEC2 card stack file for a design",
	Long: `Build a design and write its NEC2 card stack to a file, replacing any
existing file. The default file name comes from the design; use -o to pick
another path or --out-dir to write into a directory.

Examples:
  nec2gen gen folded-dipole
  nec2gen gen fd-yagi -o yagi.nec --echo
  nec2gen gen cheap-yagi --set "driven-y=5 3/8 in" --set segments=31
  nec2gen gen --all --out-dir models/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringArrayVar(&genOverrides, "set", nil,
		"override a parameter (name=value, repeatable)")
	genCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"output file (default: the design's file name in --out-dir)")
	genCmd.Flags().StringVar(&outDir, "out-dir", ".",
		"directory for the output file")
	genCmd.Flags().BoolVar(&echoDeck, "echo", false,
		"print the written file to stdout")
	genCmd.Flags().BoolVar(&genAll, "all", false,
		"generate every design")
}

func runGen(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var designs []design.Design
	switch {
	case genAll && len(args) > 0:
		return errors.New("--all does not take a design name")
	case genAll && outputPath != "":
		return errors.New("--all writes one file per design; use --out-dir instead of --output")
	case genAll && len(genOverrides) > 0:
		return errors.New("--set applies to a single design")
	case genAll:
		designs = design.All()
	case len(args) == 1:
		d, err := design.Lookup(args[0])
		if err != nil {
			return err
		}
		if err := applyOverrides(ctx, d, genOverrides); err != nil {
			return err
		}
		designs = []design.Design{d}
	default:
		return fmt.Errorf("design name required (one of: %s)", strings.Join(design.Names(), ", "))
	}

	for _, d := range designs {
		if err := generate(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func generate(ctx context.Context, d design.Design) error {
	log := logging.FromContext(ctx).With(logging.String("design", d.Name()))

	res, err := d.Build()
	if err != nil {
		log.Error(ctx, "build failed", logging.Err(err))
		return fmt.Errorf("failed to build %s: %w", d.Name(), err)
	}

	path := outputPath
	if path == "" {
		path = filepath.Join(outDir, d.FileName())
	}
	if _, err := os.Stat(path); err == nil {
		log.Warn(ctx, "overwriting existing file", logging.String("path", path))
	}
	n, err := deck.WriteFile(path, res.Deck)
	if err != nil {
		log.Error(ctx, "write failed", logging.String("path", path), logging.Err(err))
		return err
	}

	stats := res.Model.Stats()
	log.Info(ctx, "wrote card stack",
		logging.String("path", path),
		logging.Int("bytes", int(n)),
		logging.Int("primitives", stats.Primitives),
		logging.Int("transforms", stats.Transforms),
		logging.Bool("restore_discarded", stats.DiscardedRestore),
		logging.Int("feed_tag", stats.Feedpoint.Tag),
		logging.Int("feed_segment", stats.Feedpoint.Segment),
		logging.Float("sweep_start_mhz", res.Sweep.Start),
		logging.Int("frequencies", res.Sweep.Count))

	if echoDeck {
		return deck.Echo(os.Stdout, path)
	}
	fmt.Printf("Wrote %s (%d bytes, %d wires, %d arcs)\n", path, n, stats.Wires, stats.Arcs)
	return nil
}

// applyOverrides applies name=value pairs to d in order.
func applyOverrides(ctx context.Context, d design.Design, pairs []string) error {
	log := logging.FromContext(ctx)
	for _, kv := range pairs {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q: expected name=value", kv)
		}
		name = strings.TrimSpace(name)
		if err := d.Set(name, value); err != nil {
			return err
		}
		log.Debug(ctx, "parameter overridden",
			logging.String("design", d.Name()),
			logging.String("param", name),
			logging.String("value", value))
	}
	return nil
}

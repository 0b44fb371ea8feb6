package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/builder"
	"github.com/katalvlaran/skyroute/loader"
)

// generateFlags holds options for the generate subcommand.
type generateFlags struct {
	kind      string
	n         int
	p         float64
	seed      int64
	minWeight int64
	maxWeight int64
	airports  bool
	format    string
	output    string
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit a synthetic route network as YAML or JSON",
		Example: `  skyroute generate --kind reference
  skyroute generate --kind random --n 40 --p 0.15 --seed 7 --airports -o routes.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cons, err := f.constructor()
			if err != nil {
				return err
			}
			format, err := loader.ParseFormat(f.format)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(f.builderOptions(), cons)
			if err != nil {
				return err
			}

			a.log.V(1).Info("network generated", "kind", f.kind, "airports", g.NodeCount(), "routes", g.EdgeCount())
			doc := loader.FromGraph(f.kind, g)
			if f.output == "" {
				return loader.Encode(cmd.OutOrStdout(), doc, format)
			}

			return writeFile(f.output, func(w io.Writer) error {
				return loader.Encode(w, doc, format)
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "reference", "network shape: reference|path|star|complete|random")
	fl.IntVar(&f.n, "n", 10, "number of airports (ignored for reference)")
	fl.Float64Var(&f.p, "p", 0.2, "leg probability for random networks")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.Int64Var(&f.minWeight, "min-weight", 1, "minimum leg weight")
	fl.Int64Var(&f.maxWeight, "max-weight", 1, "maximum leg weight (≤ min-weight means constant)")
	fl.BoolVar(&f.airports, "airports", false, "use three-letter airport codes instead of Node_i")
	fl.StringVar(&f.format, "format", string(loader.FormatYAML), "output format: yaml|json")
	fl.StringVarP(&f.output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func (f *generateFlags) constructor() (builder.Constructor, error) {
	if f.minWeight < 0 {
		return nil, fmt.Errorf("--min-weight must be ≥ 0, got %d", f.minWeight)
	}
	switch f.kind {
	case "reference":
		return builder.Reference(), nil
	case "path":
		return builder.Path(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	default:
		return nil, fmt.Errorf("unknown --kind %q", f.kind)
	}
}

func (f *generateFlags) builderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithSeed(f.seed)}
	if f.maxWeight > f.minWeight {
		opts = append(opts, builder.WithWeightFn(builder.UniformWeightFn(f.minWeight, f.maxWeight)))
	} else {
		opts = append(opts, builder.WithWeightFn(builder.ConstantWeightFn(f.minWeight)))
	}
	if f.airports {
		opts = append(opts, builder.WithIDScheme(builder.AirportIDFn))
	}

	return opts
}

// writeFile creates path and runs write on it. A failed Close is reported,
// since it may be the first sign of a short write.
func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return write(file)
}

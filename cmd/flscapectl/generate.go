package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flscape/flscape/internal/sampler"
)

func (c *CLI) newGenerateCommand() *cobra.Command {
	var (
		benchmark  string
		dims       int
		swarmSize  int
		iterations int
		seed       int64
		output     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic trace by running particle swarm optimisation",
		Example: `  flscapectl generate --benchmark rastrigin --dims 5 --output trace.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := sampler.DefaultConfig(benchmark, dims, seed)
			cfg.SwarmSize = swarmSize
			cfg.Iterations = iterations

			in, err := sampler.Run(cfg)
			if err != nil {
				return fmt.Errorf("generate trace: %w", err)
			}

			doc := traceDocument{
				Positions:  in.Positions,
				Values:     in.Values,
				Population: in.Population,
				PopValues:  in.PopValues,
				PopSizes:   in.PopSizes,
				Dims:       in.Dims,
				Seed:       in.Seed,
			}

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}

	cmd.Flags().StringVar(&benchmark, "benchmark", "sphere", "Benchmark function: sphere, rastrigin, or ackley")
	cmd.Flags().IntVar(&dims, "dims", 5, "Number of dimensions")
	cmd.Flags().IntVar(&swarmSize, "swarm-size", 20, "Number of particles")
	cmd.Flags().IntVar(&iterations, "iterations", 50, "Number of PSO iterations")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&output, "output", "", "Output file (defaults to stdout)")
	return cmd
}

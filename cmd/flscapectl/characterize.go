package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/flscape/flscape"
)

// traceDocument mirrors flscape.Input's JSON shape, the document format
// both flscapectl and flscapesrv accept.
type traceDocument struct {
	Positions  [][]float64   `json:"positions"`
	Values     []float64     `json:"values"`
	Population [][][]float64 `json:"population,omitempty"`
	PopValues  [][]float64   `json:"popValues,omitempty"`
	PopSizes   []int         `json:"popSizes,omitempty"`
	Dims       int           `json:"dims"`
	Seed       int64         `json:"seed"`
}

func (c *CLI) newCharacterizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "characterize [file]",
		Short: "Characterize a trace read from a file or stdin",
		Example: `  flscapectl characterize trace.json
  cat trace.json | flscapectl characterize`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open trace file: %w", err)
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			raw, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("read trace: %w", err)
			}

			var doc traceDocument
			if err := json.Unmarshal(raw, &doc); err != nil {
				return fmt.Errorf("decode trace: %w", err)
			}

			in := flscape.Input{
				Positions:  doc.Positions,
				Values:     doc.Values,
				Population: doc.Population,
				PopValues:  doc.PopValues,
				PopSizes:   doc.PopSizes,
				Dims:       doc.Dims,
				Seed:       doc.Seed,
			}

			slog.Debug("characterizing trace", "points", len(in.Positions), "dims", in.Dims)

			result, err := flscape.Characterize(in)
			if err != nil {
				return fmt.Errorf("characterize: %w", err)
			}

			flat := result.Flatten()
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"result": flat,
				"length": len(flat),
			})
		},
	}
	return cmd
}

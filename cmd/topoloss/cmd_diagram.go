// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topoloss/cloud"
	"github.com/katalvlaran/topoloss/diagram"
	"github.com/katalvlaran/topoloss/diagramplot"
	"github.com/katalvlaran/topoloss/rips"
	"github.com/spf13/cobra"
)

func newDiagramCmd() *cobra.Command {
	var pointsPath, outPath string

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Compute and plot the persistence diagrams of a cloud",
		Long: `Runs the Vietoris–Rips engine on one cloud, prints the number of pairs per
dimension and, with --out, renders them. The output format follows the file
extension (png, svg, pdf, ...).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			pts, err := cloud.ReadCSVFile(pointsPath)
			if err != nil {
				return err
			}

			pairs, err := rips.New(cfg.Engine.Options(logger)...).Diagrams(pts)
			if err != nil {
				return err
			}
			ds := make([]diagram.Diagram, len(pairs))
			w := cmd.OutOrStdout()
			for dim, ps := range pairs {
				ds[dim] = diagram.FromPairs(dim, ps)
				essential := 0
				for _, p := range ps {
					if math.IsInf(p.Death, 1) {
						essential++
					}
				}
				fmt.Fprintf(w, "dim%d: %d pairs (%d essential)\n", dim, len(ps), essential)
			}

			if outPath == "" {
				return nil
			}
			err = diagramplot.Save(outPath, ds,
				diagramplot.WithTitle(cfg.Plot.Title),
				diagramplot.WithWidth(cfg.Plot.WidthInches),
			)
			if err != nil {
				return err
			}
			logger.Info("diagram written", "path", outPath)

			return nil
		},
	}
	cmd.Flags().StringVar(&pointsPath, "points", "", "CSV file of the cloud")
	cmd.Flags().StringVar(&outPath, "out", "", "image file to write (optional)")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

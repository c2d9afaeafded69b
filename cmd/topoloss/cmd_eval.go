// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/katalvlaran/topoloss/cloud"
	"github.com/katalvlaran/topoloss/diagram"
	"github.com/katalvlaran/topoloss/loss"
	"github.com/katalvlaran/topoloss/modelspace"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

func newEvalCmd() *cobra.Command {
	var sourcePath, targetPath string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the summary-statistic loss of a source cloud against a target",
		Long: `Reads both clouds, computes the target diagrams once, evaluates the loss on the
source and back-propagates it. Prints the loss, the diagram sizes and the norm of
the gradient with respect to the source coordinates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			src, err := cloud.ReadCSVFile(sourcePath)
			if err != nil {
				return fmt.Errorf("source: %w", err)
			}
			tgt, err := cloud.ReadCSVFile(targetPath)
			if err != nil {
				return fmt.Errorf("target: %w", err)
			}

			m, err := modelspace.New(src, tgt, loss.NewSummaryStatistic(cfg.Loss.Options()...),
				modelspace.FromConfig(cfg),
				modelspace.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			out, err := m.Forward(cmd.Context())
			if err != nil {
				return err
			}
			autodiff.Backward(out.Loss)
			grad := m.Points().Grad()

			w := cmd.OutOrStdout()
			target := m.Target()
			fmt.Fprintf(w, "loss: %.6g\n", out.Loss.Value)
			for _, dim := range []int{diagram.Dim0, diagram.Dim1} {
				fmt.Fprintf(w, "dim%d rows: %d (target %d)\n", dim, out.Diagrams[dim].Len(), target[dim].Len())
			}
			fmt.Fprintf(w, "gradient norm: %.6g\n", floats.Norm(grad.RawMatrix().Data, 2))

			return nil
		},
	}
	cmd.Flags().StringVar(&sourcePath, "source", "", "CSV file of the trainable cloud")
	cmd.Flags().StringVar(&targetPath, "target", "", "CSV file of the target cloud")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

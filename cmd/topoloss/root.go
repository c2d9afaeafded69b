// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/katalvlaran/topoloss/config"
	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree. Building it per call keeps flag state
// out of package globals.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "topoloss",
		Short:         "Differentiable Vietoris–Rips persistence for point clouds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "path to a YAML configuration file")

	root.AddCommand(newEvalCmd(), newDiagramCmd())

	return root
}

// loadConfig reads --config and builds the logger it describes. Logs go to stderr.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := slog.New(cfg.Log.Handler(cmd.ErrOrStderr()))

	return cfg, logger, nil
}

// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/topoloss/loss"
	"github.com/katalvlaran/topoloss/rips"
)

// Options translates the engine section into rips options. c must be valid.
func (c EngineConfig) Options(logger *slog.Logger) []rips.Option {
	opts := []rips.Option{
		rips.WithMaxDim(c.MaxDim),
		rips.WithZeroPersistence(c.ZeroPersistence),
		rips.WithLogger(logger),
	}
	if c.Threshold != nil {
		opts = append(opts, rips.WithThreshold(*c.Threshold))
	}

	return opts
}

// Options translates the loss section into summary-statistic options. c must be valid.
func (c LossConfig) Options() []loss.SummaryOption {
	opts := []loss.SummaryOption{loss.WithExponent(c.Exponent)}
	if len(c.Dimensions) > 0 {
		opts = append(opts, loss.WithDimensions(c.Dimensions...))
	}

	return opts
}

// SlogLevel maps Level onto slog; unknown strings fall back to Info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Handler returns a text or JSON slog handler writing to w.
func (c LogConfig) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

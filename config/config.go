// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/topoloss/loss"
	"github.com/katalvlaran/topoloss/rips"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Defaults not owned by a library package.
const (
	DefaultValidation = true
	DefaultTolerance  = 1e-9
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultPlotWidth  = 4.0
	DefaultPlotTitle  = "Persistence diagram"
)

// Config is the root document.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Builder BuilderConfig `yaml:"builder"`
	Loss    LossConfig    `yaml:"loss"`
	Log     LogConfig     `yaml:"log"`
	Plot    PlotConfig    `yaml:"plot"`
}

// EngineConfig configures the reference Vietoris–Rips engine.
type EngineConfig struct {
	MaxDim int `yaml:"max_dim" validate:"min=0,max=1"`

	// Threshold is the filtration cut-off; nil or .inf admits every edge.
	Threshold *float64 `yaml:"threshold,omitempty" validate:"omitempty,gte=0"`

	ZeroPersistence bool `yaml:"zero_persistence"`
}

// BuilderConfig configures diagram validation in the orchestrator.
type BuilderConfig struct {
	Validate  bool    `yaml:"validate"`
	Tolerance float64 `yaml:"tolerance" validate:"finite,gte=0"`
}

// LossConfig configures the reference summary-statistic loss.
type LossConfig struct {
	Exponent   float64 `yaml:"exponent" validate:"finite,gt=0"`
	Dimensions []int   `yaml:"dimensions,omitempty" validate:"dive,min=0,max=1"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// PlotConfig configures diagram rendering.
type PlotConfig struct {
	WidthInches float64 `yaml:"width_inches" validate:"finite,gt=0,lte=100"`
	Title       string  `yaml:"title"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			MaxDim:          rips.DefaultMaxDim,
			ZeroPersistence: rips.DefaultZeroPersistence,
		},
		Builder: BuilderConfig{
			Validate:  DefaultValidation,
			Tolerance: DefaultTolerance,
		},
		Loss: LossConfig{
			Exponent: loss.DefaultExponent,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Plot: PlotConfig{
			WidthInches: DefaultPlotWidth,
			Title:       DefaultPlotTitle,
		},
	}
}

// Load reads and validates the YAML file at path. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse overlays the YAML document in data on Default() and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

var validate = newValidator()

// newValidator adds the "finite" tag: rejects NaN and ±Inf floats.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// Validate checks every struct tag and reports all failing fields at once.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
			}

			return fmt.Errorf("%w: %v", ErrInvalid, msgs)
		}

		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

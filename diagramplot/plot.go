// SPDX-License-Identifier: MIT

package diagramplot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/topoloss/diagram"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrRender wraps failures reported by the plotting backend.
var ErrRender = errors.New("diagramplot: render failed")

// Defaults (single source of truth).
const (
	DefaultWidthInches = 4.0
	DefaultTitle       = "Persistence diagram"

	// infHeadroom places the ∞ line this fraction above the largest finite value.
	infHeadroom = 0.1
)

type options struct {
	title string
	width vg.Length
}

// Option configures rendering.
type Option func(*options)

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithWidth sets the side of the square canvas in inches. Panics unless w > 0.
func WithWidth(inches float64) Option {
	if !(inches > 0) || math.IsInf(inches, 0) {
		panic(fmt.Sprintf("diagramplot: WithWidth(%g): want finite inches > 0", inches))
	}

	return func(o *options) { o.width = vg.Length(inches) * vg.Inch }
}

func gather(opts []Option) options {
	o := options{title: DefaultTitle, width: vg.Length(DefaultWidthInches) * vg.Inch}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// New builds a plot of ds. Empty diagrams are allowed and leave an empty canvas
// with the diagonal on [0, 1].
func New(ds []diagram.Diagram, opts ...Option) (*plot.Plot, error) {
	o := gather(opts)
	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "birth"
	p.Y.Label.Text = "death"
	p.Legend.Top = false
	p.Legend.Left = false

	top := extent(ds)
	infY := top * (1 + infHeadroom)
	hasInf := false

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: infY, Y: infY}})
	if err != nil {
		return nil, fmt.Errorf("%w: diagonal: %w", ErrRender, err)
	}
	diag.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	diag.LineStyle.Color = plotutil.Color(7)
	p.Add(diag)

	for i, d := range ds {
		xys := make(plotter.XYs, 0, d.Len())
		for _, row := range d.Values() {
			y := row[1]
			if math.IsInf(y, 1) {
				y = infY
				hasInf = true
			}
			xys = append(xys, plotter.XY{X: row[0], Y: y})
		}
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("%w: dimension %d: %w", ErrRender, d.Dim, err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("H%d", d.Dim), s)
	}

	if hasInf {
		inf, err := plotter.NewLine(plotter.XYs{{X: 0, Y: infY}, {X: infY, Y: infY}})
		if err != nil {
			return nil, fmt.Errorf("%w: ∞ line: %w", ErrRender, err)
		}
		inf.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
		p.Add(inf)
		p.Legend.Add("∞", inf)
	}
	p.X.Min, p.Y.Min = 0, 0
	p.X.Max, p.Y.Max = infY, infY*(1+infHeadroom)

	return p, nil
}

// extent returns the largest finite coordinate in ds, or 1 when there is none.
func extent(ds []diagram.Diagram) float64 {
	var vals []float64
	for _, d := range ds {
		for _, row := range d.Values() {
			for _, v := range row {
				if !math.IsInf(v, 0) && !math.IsNaN(v) {
					vals = append(vals, v)
				}
			}
		}
	}
	if len(vals) == 0 {
		return 1
	}
	if m := floats.Max(vals); m > 0 {
		return m
	}

	return 1
}

// Save renders ds to path; the extension selects the format.
func Save(path string, ds []diagram.Diagram, opts ...Option) error {
	o := gather(opts)
	p, err := New(ds, opts...)
	if err != nil {
		return err
	}
	if err := p.Save(o.width, o.width, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRender, path, err)
	}

	return nil
}

// Write renders ds in the named format ("png", "svg", ...) to w.
func Write(w io.Writer, format string, ds []diagram.Diagram, opts ...Option) error {
	o := gather(opts)
	p, err := New(ds, opts...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(o.width, o.width, format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	return nil
}

// Package chart draws the per-variant line-count series as a single
// line chart.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/weiihann/linegraph/results"
)

// DefaultFileName is the chart written into the results directory.
const DefaultFileName = "graphAverageLine.pdf"

// Config controls chart layout and text rendering.
type Config struct {
	Width     vg.Length
	Height    vg.Length
	FontSize  vg.Length
	LineWidth vg.Length

	Title  string
	XLabel string
	YLabel string

	// LaTeX typesets every label with the LaTeX text handler instead
	// of plain text.
	LaTeX  bool
	Legend bool
	Grid   bool
}

// DefaultConfig returns the presentation layout: a 30x15 inch page,
// 30pt text and 5pt lines.
func DefaultConfig() Config {
	return Config{
		Width:     30 * vg.Inch,
		Height:    15 * vg.Inch,
		FontSize:  vg.Points(30),
		LineWidth: vg.Points(5),
		XLabel:    "Number of participants",
		YLabel:    "Number of lines",
		LaTeX:     true,
		Grid:      true,
	}
}

type lineStyle struct {
	color  color.Color
	dashes []vg.Length
}

// styles keeps the series distinguishable in grayscale: solid, dashed,
// dash-dot. Dash lengths are in units of line width.
var styles = map[results.Variant]lineStyle{
	results.MPST: {
		color: color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	},
	results.Binary: {
		color:  color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
		dashes: []vg.Length{3.7, 1.6},
	},
	results.Crossbeam: {
		color:  color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		dashes: []vg.Length{6.4, 1.6, 1, 1.6},
	},
}

// New builds the plot for the given series. Every series must have at
// least one point.
func New(series []results.Series, cfg Config) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, errors.New("no series to plot")
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	applyText(p, cfg)

	p.X.Tick.Marker = IntegerTicks{}
	p.Y.Tick.Marker = IntegerTicks{}

	if cfg.Grid {
		p.Add(plotter.NewGrid())
	}

	for _, s := range series {
		line, err := newLine(s, cfg)
		if err != nil {
			return nil, err
		}

		p.Add(line)

		if cfg.Legend {
			p.Legend.Add(s.Variant.DisplayName(), line)
		}
	}

	p.Legend.Top = true

	return p, nil
}

func newLine(s results.Series, cfg Config) (*plotter.Line, error) {
	if len(s.Points) == 0 {
		return nil, fmt.Errorf("%w %s", results.ErrEmptySeries,
			s.Variant.DisplayName())
	}

	line, err := plotter.NewLine(toXYs(s))
	if err != nil {
		return nil, fmt.Errorf("line %s: %w", s.Variant.DisplayName(), err)
	}

	style, ok := styles[s.Variant]
	if !ok {
		style.color = color.Black
	}

	line.Width = cfg.LineWidth
	line.Color = style.color

	for _, d := range style.dashes {
		line.Dashes = append(line.Dashes, d*cfg.LineWidth)
	}

	return line, nil
}

// Render writes the chart in the given format (pdf, svg, png, eps...).
func Render(w io.Writer, series []results.Series, cfg Config, format string) (err error) {
	p, err := New(series, cfg)
	if err != nil {
		return err
	}

	defer recoverDraw(&err)

	wt, err := p.WriterTo(cfg.Width, cfg.Height, format)
	if err != nil {
		return fmt.Errorf("%s canvas: %w", format, err)
	}

	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s chart: %w", format, err)
	}

	return nil
}

// Save writes the chart to path; the format follows the extension.
func Save(path string, series []results.Series, cfg Config) (err error) {
	p, err := New(series, cfg)
	if err != nil {
		return err
	}

	defer recoverDraw(&err)

	if err := p.Save(cfg.Width, cfg.Height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}

	return nil
}

// Format returns the image format implied by a file name.
func Format(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func toXYs(s results.Series) plotter.XYs {
	xs, ys := s.XY()

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = float64(xs[i])
		pts[i].Y = float64(ys[i])
	}

	return pts
}

// texSpecial holds the characters the LaTeX handler parses as markup.
const texSpecial = `_^$&%#{}\`

// recoverDraw turns a panic raised while drawing text into an error.
func recoverDraw(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("draw chart: %v", r)
	}
}

// applyText sets font size and text handler on every label. In LaTeX
// mode, a label containing TeX markup characters is drawn as plain text.
func applyText(p *plot.Plot, cfg Config) {
	plain := text.Plain{Fonts: font.DefaultCache}

	textStyles := []struct {
		style *text.Style
		text  string
	}{
		{&p.Title.TextStyle, p.Title.Text},
		{&p.X.Label.TextStyle, p.X.Label.Text},
		{&p.Y.Label.TextStyle, p.Y.Label.Text},
		{&p.X.Tick.Label, ""},
		{&p.Y.Tick.Label, ""},
		{&p.Legend.TextStyle, ""},
	}

	for _, ts := range textStyles {
		ts.style.Handler = handlerFor(ts.text, cfg.LaTeX, plain)
		if cfg.FontSize > 0 {
			ts.style.Font.Size = cfg.FontSize
		}
	}
}

func handlerFor(s string, latex bool, plain text.Plain) text.Handler {
	if !latex || strings.ContainsAny(s, texSpecial) {
		return plain
	}

	return text.Latex{Fonts: font.DefaultCache}
}

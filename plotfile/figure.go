package plotfile

import (
	"fmt"
	"strconv"
	"strings"

	gnuplot "github.com/plotforge/go-gnuplot"
	"github.com/plotforge/go-gnuplot/plot"
)

var namedColors = map[string]plot.Color{
	"black":   plot.Black,
	"red":     plot.Red,
	"green":   plot.Green,
	"yellow":  plot.Yellow,
	"blue":    plot.Blue,
	"magenta": plot.Magenta,
	"cyan":    plot.Cyan,
	"white":   plot.White,
}

// Figure validates the document and builds the series list and figure
// options it describes. The results feed gnuplot.Render or a live
// session's PlotMany unchanged.
func (d *Document) Figure() ([]plot.Series, []gnuplot.Option, error) {
	opts, err := d.options()
	if err != nil {
		return nil, nil, err
	}
	if len(d.Series) == 0 {
		return nil, nil, fmt.Errorf("document has no series")
	}
	series := make([]plot.Series, 0, len(d.Series))
	for i := range d.Series {
		s, err := d.Series[i].build()
		if err != nil {
			return nil, nil, fmt.Errorf("series[%d]: %w", i, err)
		}
		series = append(series, s)
	}
	return series, opts, nil
}

func (d *Document) options() ([]gnuplot.Option, error) {
	var opts []gnuplot.Option
	if d.Output != nil {
		out, err := d.Output.build()
		if err != nil {
			return nil, fmt.Errorf("output: %w", err)
		}
		opts = append(opts, gnuplot.WithOutput(out))
	}
	if d.Title != "" {
		opts = append(opts, gnuplot.WithTitle(d.Title))
	}
	if d.Grid {
		opts = append(opts, gnuplot.WithGrid())
	}
	if d.Fill != nil {
		fill, err := d.Fill.build()
		if err != nil {
			return nil, fmt.Errorf("fill: %w", err)
		}
		opts = append(opts, gnuplot.WithFill(fill))
	}
	if d.Range != nil {
		rng, err := d.Range.build()
		if err != nil {
			return nil, fmt.Errorf("range: %w", err)
		}
		opts = append(opts, gnuplot.WithRange(rng))
	}
	if d.Labels != nil {
		opts = append(opts, gnuplot.WithLabels(plot.Labels{X: d.Labels.X, Y: d.Labels.Y}))
	}
	if d.Tics != nil {
		opts = append(opts, gnuplot.WithTics(plot.Tics{
			X:       d.Tics.X,
			XRotate: d.Tics.XRotate,
			Y:       d.Tics.Y,
			YRotate: d.Tics.YRotate,
		}))
	}
	return opts, nil
}

func (o *OutputSpec) build() (plot.Output, error) {
	var fontOpts []plot.OutputOption
	if o.Font != "" {
		fontOpts = append(fontOpts, plot.WithFont(o.Font))
	}
	term := strings.ToLower(o.Terminal)
	switch term {
	case "wxt", "x11", "qt":
		if o.File != "" {
			return plot.Output{}, fmt.Errorf("terminal %s does not write to a file", term)
		}
	case "png", "eps":
		if o.File == "" {
			return plot.Output{}, fmt.Errorf("terminal %s requires a file", term)
		}
	default:
		return plot.Output{}, fmt.Errorf("unknown terminal %q", o.Terminal)
	}
	switch term {
	case "wxt":
		return plot.Wxt(fontOpts...), nil
	case "x11":
		return plot.X11(fontOpts...), nil
	case "qt":
		return plot.Qt(fontOpts...), nil
	case "png":
		return plot.PNG(o.File, fontOpts...), nil
	default:
		return plot.EPS(o.File, fontOpts...), nil
	}
}

func (f *FillSpec) build() (plot.Filling, error) {
	switch f.Style {
	case "solid":
		if f.Pattern != 0 {
			return plot.Filling{}, fmt.Errorf("solid fill does not take a pattern")
		}
		return plot.Solid, nil
	case "pattern":
		if f.Pattern < 0 {
			return plot.Filling{}, fmt.Errorf("pattern index must not be negative, got %d", f.Pattern)
		}
		return plot.Pattern(f.Pattern), nil
	default:
		return plot.Filling{}, fmt.Errorf("unknown fill style %q", f.Style)
	}
}

func (r *RangeSpec) build() (plot.Range, error) {
	switch r.Axis {
	case "x":
		if r.XMin == nil || r.XMax == nil {
			return plot.Range{}, fmt.Errorf("x range requires xmin and xmax")
		}
		if r.YMin != nil || r.YMax != nil {
			return plot.Range{}, fmt.Errorf("x range does not take y bounds")
		}
		return plot.XRange(*r.XMin, *r.XMax), nil
	case "y":
		if r.YMin == nil || r.YMax == nil {
			return plot.Range{}, fmt.Errorf("y range requires ymin and ymax")
		}
		if r.XMin != nil || r.XMax != nil {
			return plot.Range{}, fmt.Errorf("y range does not take x bounds")
		}
		return plot.YRange(*r.YMin, *r.YMax), nil
	case "xy":
		if r.XMin == nil || r.XMax == nil || r.YMin == nil || r.YMax == nil {
			return plot.Range{}, fmt.Errorf("xy range requires xmin, xmax, ymin and ymax")
		}
		return plot.XYRange(*r.XMin, *r.XMax, *r.YMin, *r.YMax), nil
	default:
		return plot.Range{}, fmt.Errorf("unknown range axis %q", r.Axis)
	}
}

func (s *SeriesSpec) build() (plot.Series, error) {
	opts, err := s.seriesOptions()
	if err != nil {
		return plot.Series{}, err
	}

	payloads := 0
	if s.Expr != "" {
		payloads++
	}
	if s.Values != nil {
		payloads++
	}
	if s.Points != nil {
		payloads++
	}
	if payloads != 1 {
		return plot.Series{}, fmt.Errorf("exactly one of expr, values or points must be set")
	}

	var xy []plot.XY
	if s.Points != nil {
		xy, err = pointPairs(s.Points)
		if err != nil {
			return plot.Series{}, err
		}
	}

	switch s.Style {
	case "lines":
		switch {
		case s.Expr != "":
			return plot.LinesFunc(s.Expr, opts...), nil
		case s.Values != nil:
			return plot.Lines(s.Values, opts...), nil
		default:
			return plot.LinesXY(xy, opts...), nil
		}
	case "points":
		switch {
		case s.Expr != "":
			return plot.PointsFunc(s.Expr, opts...), nil
		case s.Values != nil:
			return plot.Points(s.Values, opts...), nil
		default:
			return plot.PointsXY(xy, opts...), nil
		}
	case "steps":
		switch {
		case s.Expr != "":
			return plot.Series{}, fmt.Errorf("steps cannot plot a function expression")
		case s.Values != nil:
			return plot.Steps(s.Values, opts...), nil
		default:
			return plot.StepsXY(xy, opts...), nil
		}
	case "histogram":
		if s.Values == nil {
			return plot.Series{}, fmt.Errorf("histogram requires values")
		}
		return plot.Histogram(s.Values, opts...), nil
	default:
		return plot.Series{}, fmt.Errorf("unknown style %q", s.Style)
	}
}

func (s *SeriesSpec) seriesOptions() ([]plot.SeriesOption, error) {
	var opts []plot.SeriesOption
	if s.Title != "" {
		opts = append(opts, plot.WithTitle(s.Title))
	}
	if s.Color != "" {
		c, err := ParseColor(s.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, plot.WithColor(c))
	}
	if s.Weight != 0 {
		if s.Weight < 1 {
			return nil, fmt.Errorf("weight must be positive, got %d", s.Weight)
		}
		opts = append(opts, plot.WithWeight(s.Weight))
	}
	if s.Fill != nil {
		if s.Style != "histogram" {
			return nil, fmt.Errorf("fill applies to histogram series only")
		}
		fill, err := s.Fill.build()
		if err != nil {
			return nil, fmt.Errorf("fill: %w", err)
		}
		opts = append(opts, plot.WithFill(fill))
	}
	return opts, nil
}

// ParseColor resolves a named color or a "#rrggbb" hex triplet.
func ParseColor(s string) (plot.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return plot.RGB(int(v>>16), int(v>>8&0xff), int(v&0xff)), nil
		}
	}
	return plot.Color{}, fmt.Errorf("unknown color %q", s)
}

func pointPairs(points [][]float64) ([]plot.XY, error) {
	xy := make([]plot.XY, len(points))
	for i, p := range points {
		if len(p) != 2 {
			return nil, fmt.Errorf("points[%d]: want [x, y], got %d values", i, len(p))
		}
		xy[i] = plot.XY{X: p[0], Y: p[1]}
	}
	return xy, nil
}

package plot

import (
	"fmt"
	"slices"
	"strings"
)

// Plot styles recognized by the engine's `with <style>` clause.
const (
	styleLines        = "lines"
	stylePoints       = "points"
	styleSteps        = "steps"
	styleHistograms   = "histograms"
	styleCandlesticks = "candlesticks"
)

// data is a series payload that can render itself as inline data rows.
// Function-expression series carry no payload.
type data interface {
	// using returns the engine's column selection for the payload shape.
	using() string
	// appendRows appends one rendered row per data point.
	appendRows(dst []string) []string
	// len reports the number of data points.
	len() int
}

type dataY []float64

func (d dataY) using() string { return "using 1" }
func (d dataY) len() int      { return len(d) }
func (d dataY) appendRows(dst []string) []string {
	for _, y := range d {
		dst = append(dst, ftoa(y))
	}
	return dst
}

type dataXY []XY

func (d dataXY) using() string { return "using 1:2" }
func (d dataXY) len() int      { return len(d) }
func (d dataXY) appendRows(dst []string) []string {
	for _, p := range d {
		dst = append(dst, ftoa(p.X)+" "+ftoa(p.Y))
	}
	return dst
}

type dataTimeY []TimeY

func (d dataTimeY) using() string { return "using 1:2" }
func (d dataTimeY) len() int      { return len(d) }
func (d dataTimeY) appendRows(dst []string) []string {
	for _, p := range d {
		dst = append(dst, itoa(p.T)+" "+ftoa(p.Y))
	}
	return dst
}

type dataOHLC []Candle

func (d dataOHLC) using() string { return "using 1:2:3:4:5" }
func (d dataOHLC) len() int      { return len(d) }

// appendRows renders bars in the engine's candlestick column order:
// time, open, low, high, close.
func (d dataOHLC) appendRows(dst []string) []string {
	for _, c := range d {
		dst = append(dst, strings.Join([]string{
			itoa(c.T), ftoa(c.Open), ftoa(c.Low), ftoa(c.High), ftoa(c.Close),
		}, " "))
	}
	return dst
}

// Series is one immutable data trace: a plot style, optional styling, and a
// payload. Constructing a Series never fails and never touches the engine;
// rendering happens at plot time.
type Series struct {
	clause string
	data   data
}

// SeriesOption configures the styling of a single series.
type SeriesOption func(*seriesStyle)

type seriesStyle struct {
	title     string
	hasTitle  bool
	color     Color
	hasColor  bool
	weight    int
	hasWeight bool
	fill      Filling
	hasFill   bool
}

// WithTitle sets the series title shown in the plot key.
func WithTitle(title string) SeriesOption {
	return func(s *seriesStyle) {
		s.title = title
		s.hasTitle = true
	}
}

// WithColor sets the series line color.
func WithColor(c Color) SeriesOption {
	return func(s *seriesStyle) {
		s.color = c
		s.hasColor = true
	}
}

// WithWeight sets the series line width. Non-negative values are expected but
// not enforced.
func WithWeight(weight int) SeriesOption {
	return func(s *seriesStyle) {
		s.weight = weight
		s.hasWeight = true
	}
}

// WithFill sets the fill style. Only histogram and candlestick series render
// a fill; the option is ignored by the other constructors.
func WithFill(f Filling) SeriesOption {
	return func(s *seriesStyle) {
		s.fill = f
		s.hasFill = true
	}
}

// newSeries builds the plot clause the series will contribute to the plot
// directive. A nil payload marks an expression series, whose text renders
// verbatim even when empty; allowFill gates the fs keyword to the styles
// that honor it.
func newSeries(style, expr string, d data, allowFill bool, opts []SeriesOption) Series {
	var st seriesStyle
	for _, opt := range opts {
		opt(&st)
	}

	var b strings.Builder
	if d != nil {
		b.WriteString("'-' ")
		b.WriteString(d.using())
	} else {
		b.WriteString(expr)
	}
	if st.hasTitle {
		fmt.Fprintf(&b, " title %q", st.title)
	}
	b.WriteString(" with ")
	b.WriteString(style)
	if st.hasColor {
		fmt.Fprintf(&b, " lc rgb '%s'", st.color)
	}
	if st.hasWeight {
		fmt.Fprintf(&b, " lw %d", st.weight)
	}
	if allowFill && st.hasFill {
		fmt.Fprintf(&b, " fs %s", st.fill)
	}

	return Series{clause: b.String(), data: d}
}

// Lines plots Y values against their index with connected lines.
func Lines(ys []float64, opts ...SeriesOption) Series {
	return newSeries(styleLines, "", dataY(slices.Clone(ys)), false, opts)
}

// LinesXY plots (x, y) pairs with connected lines.
func LinesXY(points []XY, opts ...SeriesOption) Series {
	return newSeries(styleLines, "", dataXY(slices.Clone(points)), false, opts)
}

// LinesTime plots timestamped values with connected lines.
func LinesTime(points []TimeY, opts ...SeriesOption) Series {
	return newSeries(styleLines, "", dataTimeY(slices.Clone(points)), false, opts)
}

// LinesFunc plots a raw function expression, e.g. "sin(x)", with connected
// lines. The expression is embedded in the plot directive verbatim.
func LinesFunc(expr string, opts ...SeriesOption) Series {
	return newSeries(styleLines, expr, nil, false, opts)
}

// Points plots Y values against their index as discrete points.
func Points(ys []float64, opts ...SeriesOption) Series {
	return newSeries(stylePoints, "", dataY(slices.Clone(ys)), false, opts)
}

// PointsXY plots (x, y) pairs as discrete points.
func PointsXY(points []XY, opts ...SeriesOption) Series {
	return newSeries(stylePoints, "", dataXY(slices.Clone(points)), false, opts)
}

// PointsTime plots timestamped values as discrete points.
func PointsTime(points []TimeY, opts ...SeriesOption) Series {
	return newSeries(stylePoints, "", dataTimeY(slices.Clone(points)), false, opts)
}

// PointsFunc plots a raw function expression as discrete points.
func PointsFunc(expr string, opts ...SeriesOption) Series {
	return newSeries(stylePoints, expr, nil, false, opts)
}

// Steps plots Y values against their index as a staircase.
func Steps(ys []float64, opts ...SeriesOption) Series {
	return newSeries(styleSteps, "", dataY(slices.Clone(ys)), false, opts)
}

// StepsXY plots (x, y) pairs as a staircase.
func StepsXY(points []XY, opts ...SeriesOption) Series {
	return newSeries(styleSteps, "", dataXY(slices.Clone(points)), false, opts)
}

// StepsTime plots timestamped values as a staircase.
func StepsTime(points []TimeY, opts ...SeriesOption) Series {
	return newSeries(styleSteps, "", dataTimeY(slices.Clone(points)), false, opts)
}

// Histogram plots Y values as histogram bars. WithFill selects the bar fill.
func Histogram(ys []float64, opts ...SeriesOption) Series {
	return newSeries(styleHistograms, "", dataY(slices.Clone(ys)), true, opts)
}

// Candlesticks plots OHLC bars against their timestamps. WithFill selects the
// box fill.
func Candlesticks(bars []Candle, opts ...SeriesOption) Series {
	return newSeries(styleCandlesticks, "", dataOHLC(slices.Clone(bars)), true, opts)
}

// Clause returns the fragment this series contributes to the plot directive.
func (s Series) Clause() string {
	return s.clause
}

// HasData reports whether the series carries an inline data block.
// Function-expression series do not.
func (s Series) HasData() bool {
	return s.data != nil
}

// Rows returns the rendered inline data rows, one per data point, without the
// terminating sentinel. Function-expression series return nil.
func (s Series) Rows() []string {
	if s.data == nil {
		return nil
	}
	return s.data.appendRows(make([]string, 0, s.data.len()))
}

// Package plot defines the typed descriptions a gnuplot script is built from.
//
// Values in this package are pure descriptors: constructing them never touches
// the engine, and each value knows how to render itself as gnuplot directive
// text. The session layer (package gnuplot) composes these fragments into
// complete scripts and streams them to the engine process.
//
// # Value Types
//
// Configuration descriptors map one-to-one onto gnuplot `set` directives:
//
//	Color    -> lc rgb '<name>' or lc rgb '#RRGGBB'
//	Range    -> set xrange [lo:hi] / set yrange [lo:hi]
//	Filling  -> fs solid / fs pattern <n>, set style fill ...
//	Output   -> set terminal ... / set output '...'
//	Labels   -> set xlabel "..." / set ylabel "..."
//	Tics     -> set xtics ("a" 0, "b" 1, ...) / set ytics (...)
//
// A descriptor left at its zero value renders nothing; there are no sentinel
// defaults written into scripts.
//
// # Series
//
// A Series pairs a plotting style (lines, points, steps, histograms,
// candlesticks) with a data payload: bare Y values, (x, y) pairs, timestamped
// values, OHLC bars, or a raw function expression such as "sin(x)". Payload
// data is rendered as an inline data block terminated by the engine's `e`
// sentinel; function expressions are embedded in the plot directive itself and
// carry no block.
//
// No numeric validation is performed anywhere in this package: out-of-range
// RGB components, inverted ranges and negative line weights are passed through
// to the engine verbatim, matching what the engine itself tolerates.
package plot

import (
	"strconv"
	"time"
)

// XY is a single (x, y) data point.
type XY struct {
	X float64
	Y float64
}

// TimeY is a single timestamped data point. Timestamps are rendered as Unix
// epoch seconds.
type TimeY struct {
	T time.Time
	Y float64
}

// Candle is a single OHLC bar for candlestick series.
type Candle struct {
	T     time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// ftoa renders a float in its shortest round-trip form, keeping rendered
// scripts stable across runs.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// itoa renders a timestamp as epoch seconds.
func itoa(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

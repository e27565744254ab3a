// Package gnuplot drives a gnuplot engine process from Go.
//
// A Session owns a spawned engine process and writes rendered script text to
// its stdin. The protocol is strictly one-way: every operation renders its
// script deterministically, hands it to the engine in a single write, and
// never reads anything back. Typed chart values live in the plot subpackage;
// this package composes them into scripts and manages the process lifecycle.
//
// # Architecture
//
// The module is organized into layers:
//
//   - Session/Option: high-level API for configuring figures and plotting
//   - plot: typed chart values (series, colors, ranges, labels, tics, outputs)
//   - process: engine process spawning and the write-side Channel
//   - plotfile: YAML plot documents consumed by the gplot command line tool
//
// # Basic Usage
//
//	// Spawn a gnuplot process
//	gp, err := gnuplot.NewSession()
//	if err != nil {
//	    return err
//	}
//	defer gp.Close()
//
//	// Draw two function plots in one figure
//	err = gp.PlotMany(
//	    []plot.Series{
//	        plot.LinesFunc("sin(x)", plot.WithTitle("Plot a line"), plot.WithColor(plot.Blue)),
//	        plot.PointsFunc("cos(x)", plot.WithTitle("Plot points"), plot.WithColor(plot.Green)),
//	    },
//	    gnuplot.WithRange(plot.XYRange(-10, 10, -1.5, 1.5)),
//	)
//
// # Channel Agnostic
//
// The session core performs no process I/O of its own. It writes to a
// process.Channel, normally the stdin pipe of a spawned engine, but
// WithChannel substitutes any writer plus closer:
//
//   - an in-memory buffer, to assert on exact script bytes in tests
//   - a file, to record a script for later batch replay
//   - a pipe to an engine managed by the caller
//
// Scripts can also be rendered without any session at all through Render,
// RenderSet and RenderUnset.
//
// # Reference
//
// Engine documentation: http://www.gnuplot.info/documentation.html
package gnuplot

// Version is the library version.
const Version = "0.1.0-dev"

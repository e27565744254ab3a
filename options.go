package gnuplot

import "github.com/plotforge/go-gnuplot/plot"

// Option adjusts the figure configuration carried by a single Set, Unset or
// plot invocation. Every option is independent and off by default; an
// invocation renders directives only for the options it was actually given.
//
// The engine itself is stateful, so a setting applied by one invocation
// stays in force until a later Unset resets it.
type Option func(*config)

// config collects the figure options of one invocation. A nil field means
// the option was absent and contributes nothing to the rendered script.
type config struct {
	output *plot.Output
	title  *string
	grid   bool
	fill   *plot.Filling
	rng    *plot.Range
	labels *plot.Labels
	tics   *plot.Tics
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithOutput selects the terminal the figure is drawn on, or the file it is
// written to for file-backed terminals.
func WithOutput(o plot.Output) Option {
	return func(c *config) { c.output = &o }
}

// WithTitle sets the figure title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = &title }
}

// WithGrid draws the background grid. Under Unset the same option removes
// it again.
func WithGrid() Option {
	return func(c *config) { c.grid = true }
}

// WithFill sets the fill style used by filled plot styles such as
// histograms.
func WithFill(f plot.Filling) Option {
	return func(c *config) { c.fill = &f }
}

// WithRange fixes the plotted range of one or both axes. Under Unset the
// same axes are returned to autoscaling.
func WithRange(r plot.Range) Option {
	return func(c *config) { c.rng = &r }
}

// WithLabels sets the axis labels.
func WithLabels(l plot.Labels) Option {
	return func(c *config) { c.labels = &l }
}

// WithTics places explicit tic labels on the axes. Under Unset the same
// axes are returned to automatic tic placement.
func WithTics(t plot.Tics) Option {
	return func(c *config) { c.tics = &t }
}

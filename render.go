package gnuplot

import (
	"fmt"
	"strings"

	"github.com/plotforge/go-gnuplot/plot"
)

// setLines renders the configuration into set directives. Emission order is
// fixed (output, title, grid, fill, range, labels, tics) so equal
// configurations always render byte-for-byte equal scripts.
func (c *config) setLines() []string {
	var lines []string
	if c.output != nil {
		lines = append(lines, c.output.Directives()...)
	}
	if c.title != nil {
		lines = append(lines, fmt.Sprintf("set title %q", *c.title))
	}
	if c.grid {
		lines = append(lines, "set grid")
	}
	if c.fill != nil {
		lines = append(lines, "set style fill "+c.fill.String())
	}
	if c.rng != nil {
		lines = append(lines, c.rng.Directives()...)
	}
	if c.labels != nil {
		lines = append(lines, c.labels.Directives()...)
	}
	if c.tics != nil {
		lines = append(lines, c.tics.Directives()...)
	}
	return lines
}

// unsetLines renders the reset directives for the same options, in the same
// order. Only the shape of a value matters when resetting: a range resets
// the axes it names regardless of its bounds, a tics value resets the axes
// it labels, and so on.
func (c *config) unsetLines() []string {
	var lines []string
	if c.output != nil {
		lines = append(lines, "unset output")
	}
	if c.title != nil {
		lines = append(lines, "unset title")
	}
	if c.grid {
		lines = append(lines, "unset grid")
	}
	if c.fill != nil {
		lines = append(lines, "unset style fill")
	}
	if c.rng != nil {
		lines = append(lines, c.rng.ResetDirectives()...)
	}
	if c.labels != nil {
		lines = append(lines, c.labels.ResetDirectives()...)
	}
	if c.tics != nil {
		lines = append(lines, c.tics.ResetDirectives()...)
	}
	return lines
}

// plotLines renders a complete plot invocation: the set directives, one plot
// directive with comma-separated series clauses, then the inline data block
// of every data-backed series, each terminated by the "e" sentinel. Data
// blocks follow the clause order, which is how the engine pairs them with
// the '-' pseudo-files in the directive.
func plotLines(c *config, series []plot.Series) []string {
	lines := c.setLines()

	clauses := make([]string, len(series))
	for i, s := range series {
		clauses[i] = s.Clause()
	}
	lines = append(lines, "plot "+strings.Join(clauses, ", "))

	for _, s := range series {
		if !s.HasData() {
			continue
		}
		lines = append(lines, s.Rows()...)
		lines = append(lines, "e")
	}
	return lines
}

// joinScript flattens rendered lines into the exact text written to the
// engine: newline-separated with a trailing newline, empty for no lines.
func joinScript(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Render returns the script PlotMany would send for the given series and
// options, without a session or engine. Rendering is deterministic: equal
// inputs produce byte-for-byte equal scripts.
func Render(series []plot.Series, opts ...Option) (string, error) {
	if len(series) == 0 {
		return "", ErrEmptySeriesList
	}
	return joinScript(plotLines(newConfig(opts), series)), nil
}

// RenderSet returns the script Set would send for the given options.
func RenderSet(opts ...Option) string {
	return joinScript(newConfig(opts).setLines())
}

// RenderUnset returns the script Unset would send for the given options.
func RenderUnset(opts ...Option) string {
	return joinScript(newConfig(opts).unsetLines())
}

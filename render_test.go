package gnuplot

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotforge/go-gnuplot/internal/golden"
	"github.com/plotforge/go-gnuplot/plot"
)

func TestRenderFunctionPlot(t *testing.T) {
	script, err := Render(
		[]plot.Series{
			plot.LinesFunc("sin(x)", plot.WithTitle("Plot a line"), plot.WithColor(plot.Blue)),
			plot.PointsFunc("cos(x)", plot.WithTitle("Plot points"), plot.WithColor(plot.Green)),
		},
		WithRange(plot.XYRange(-10, 10, -1.5, 1.5)),
	)
	require.NoError(t, err)

	golden.Assert(t, "render_functions.golden", script)
	assert.NotContains(t, script, "'-'", "function plots carry no inline data")
	assert.NotContains(t, script, "\ne\n", "function plots carry no sentinel")
}

func TestRenderCandlesticks(t *testing.T) {
	bars := []plot.Candle{
		{T: time.Unix(1262304000, 0), Open: 10, High: 12, Low: 9.5, Close: 11},
		{T: time.Unix(1262390400, 0), Open: 11, High: 13.25, Low: 10, Close: 12},
	}
	script, err := Render(
		[]plot.Series{plot.Candlesticks(bars, plot.WithColor(plot.Red), plot.WithFill(plot.Solid))},
		WithTitle("Daily bars"),
		WithGrid(),
		WithLabels(plot.Labels{X: "Time", Y: "Price"}),
	)
	require.NoError(t, err)

	golden.Assert(t, "render_candlesticks.golden", script)
}

func TestRenderMixedSeries(t *testing.T) {
	script, err := Render([]plot.Series{
		plot.Lines([]float64{1, 2, 3}, plot.WithTitle("measured")),
		plot.LinesFunc("x", plot.WithTitle("model")),
		plot.PointsXY([]plot.XY{{X: 0, Y: 0.5}}),
	})
	require.NoError(t, err)

	golden.Assert(t, "render_mixed.golden", script)
}

func TestRenderEmptySeriesList(t *testing.T) {
	_, err := Render(nil)
	assert.ErrorIs(t, err, ErrEmptySeriesList)

	_, err = Render([]plot.Series{})
	assert.ErrorIs(t, err, ErrEmptySeriesList)
}

func TestRenderDeterministic(t *testing.T) {
	render := func() string {
		script, err := Render(
			[]plot.Series{
				plot.Histogram([]float64{3, 1, 4, 1, 5}, plot.WithFill(plot.Pattern(2))),
				plot.LinesFunc("x*x"),
			},
			WithTitle("digits"),
			WithRange(plot.XRange(0, 5)),
			WithTics(plot.Tics{X: []string{"a", "b", "c", "d", "e"}, XRotate: 45}),
		)
		require.NoError(t, err)
		return script
	}

	first := render()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, render(), "equal inputs must render byte-for-byte equal scripts")
	}
}

func TestRenderDataBlockRowCount(t *testing.T) {
	for _, n := range []int{0, 1, 16} {
		script, err := Render([]plot.Series{plot.Lines(make([]float64, n))})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(script, "\n"), "\n")
		assert.Len(t, lines, 1+n+1, "plot directive, one row per point, one sentinel")
		assert.Equal(t, "e", lines[len(lines)-1])
	}
}

func TestRenderSetOrderIsFixed(t *testing.T) {
	// Options are given out of order; the rendered directives follow the
	// renderer's order: output, title, grid, fill, range, labels, tics.
	script := RenderSet(
		WithTics(plot.Tics{X: []string{"a"}}),
		WithLabels(plot.Labels{X: "x"}),
		WithRange(plot.YRange(0, 1)),
		WithFill(plot.Pattern(1)),
		WithGrid(),
		WithTitle("T"),
		WithOutput(plot.PNG("o.png")),
	)

	expected := strings.Join([]string{
		"set terminal png",
		"set output 'o.png'",
		`set title "T"`,
		"set grid",
		"set style fill pattern 1",
		"set yrange [0:1]",
		`set xlabel "x"`,
		`set xtics ("a" 0)`,
	}, "\n") + "\n"
	assert.Equal(t, expected, script)
}

func TestRenderSetOmitsAbsentOptions(t *testing.T) {
	assert.Empty(t, RenderSet())
	assert.Equal(t, "set grid\n", RenderSet(WithGrid()))
	assert.Equal(t, "set title \"t\"\n", RenderSet(WithTitle("t")))
}

func TestRenderUnset(t *testing.T) {
	script := RenderUnset(
		WithOutput(plot.Wxt()),
		WithTitle("ignored"),
		WithGrid(),
		WithFill(plot.Solid),
		WithRange(plot.XYRange(1, 2, 3, 4)),
		WithLabels(plot.Labels{X: "x", Y: "y"}),
		WithTics(plot.Tics{X: []string{"a"}}),
	)

	expected := strings.Join([]string{
		"unset output",
		"unset title",
		"unset grid",
		"unset style fill",
		"set autoscale xy",
		"unset xlabel",
		"unset ylabel",
		"set xtics autofreq",
	}, "\n") + "\n"
	assert.Equal(t, expected, script)
}

func TestRenderUnsetIgnoresValueMagnitudes(t *testing.T) {
	a := RenderUnset(WithRange(plot.XRange(-100, 100)), WithTitle("one"))
	b := RenderUnset(WithRange(plot.XRange(0, 0)), WithTitle("two"))
	assert.Equal(t, a, b, "resetting depends on option shape, not values")
}

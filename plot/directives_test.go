package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeDirectives(t *testing.T) {
	tests := []struct {
		name          string
		rng           Range
		expected      []string
		expectedReset []string
	}{
		{
			name:          "x range",
			rng:           XRange(-10, 10),
			expected:      []string{"set xrange [-10:10]"},
			expectedReset: []string{"set autoscale x"},
		},
		{
			name:          "y range",
			rng:           YRange(-1.5, 1.5),
			expected:      []string{"set yrange [-1.5:1.5]"},
			expectedReset: []string{"set autoscale y"},
		},
		{
			name: "xy range",
			rng:  XYRange(0, 1, 2, 3),
			expected: []string{
				"set xrange [0:1]",
				"set yrange [2:3]",
			},
			expectedReset: []string{"set autoscale xy"},
		},
		{
			name:          "inverted bounds pass through unchecked",
			rng:           XRange(10, -10),
			expected:      []string{"set xrange [10:-10]"},
			expectedReset: []string{"set autoscale x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rng.Directives())
			assert.Equal(t, tt.expectedReset, tt.rng.ResetDirectives())
		})
	}
}

func TestLabelsDirectives(t *testing.T) {
	all := Labels{X: "Day", Y: "Price"}
	assert.Equal(t, []string{`set xlabel "Day"`, `set ylabel "Price"`}, all.Directives())
	assert.Equal(t, []string{"unset xlabel", "unset ylabel"}, all.ResetDirectives())

	xOnly := Labels{X: "Day"}
	assert.Equal(t, []string{`set xlabel "Day"`}, xOnly.Directives())
	assert.Equal(t, []string{"unset xlabel"}, xOnly.ResetDirectives())

	var none Labels
	assert.Empty(t, none.Directives())
	assert.Empty(t, none.ResetDirectives())
}

func TestTicsDirectives(t *testing.T) {
	tests := []struct {
		name     string
		tics     Tics
		expected []string
	}{
		{
			name:     "x labels at increasing positions",
			tics:     Tics{X: []string{"Mon", "Tue", "Wed"}},
			expected: []string{`set xtics ("Mon" 0, "Tue" 1, "Wed" 2)`},
		},
		{
			name:     "rotation clause precedes the labels",
			tics:     Tics{X: []string{"Jan", "Feb"}, XRotate: 90},
			expected: []string{`set xtics rotate by 90 ("Jan" 0, "Feb" 1)`},
		},
		{
			name: "both axes",
			tics: Tics{X: []string{"a"}, Y: []string{"lo", "hi"}, YRotate: -45},
			expected: []string{
				`set xtics ("a" 0)`,
				`set ytics rotate by -45 ("lo" 0, "hi" 1)`,
			},
		},
		{
			name:     "no labels renders nothing",
			tics:     Tics{XRotate: 90},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tics.Directives())
		})
	}
}

func TestTicsResetDirectives(t *testing.T) {
	both := Tics{X: []string{"a"}, Y: []string{"b"}}
	assert.Equal(t, []string{"set xtics autofreq", "set ytics autofreq"}, both.ResetDirectives())

	yOnly := Tics{Y: []string{"b"}}
	assert.Equal(t, []string{"set ytics autofreq"}, yOnly.ResetDirectives())
}

func TestOutputDirectives(t *testing.T) {
	tests := []struct {
		name     string
		output   Output
		expected []string
	}{
		{
			name:     "wxt",
			output:   Wxt(),
			expected: []string{"set terminal wxt persist"},
		},
		{
			name:     "x11 with font",
			output:   X11(WithFont("Helvetica,10")),
			expected: []string{"set terminal x11 persist font 'Helvetica,10'"},
		},
		{
			name:     "qt",
			output:   Qt(),
			expected: []string{"set terminal qt persist"},
		},
		{
			name:   "png writes to a file",
			output: PNG("out.png"),
			expected: []string{
				"set terminal png",
				"set output 'out.png'",
			},
		},
		{
			name:   "eps with font",
			output: EPS("fig.eps", WithFont("Times,12")),
			expected: []string{
				"set terminal postscript eps enhanced font 'Times,12'",
				"set output 'fig.eps'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.output.Directives())
		})
	}
}

func TestFillingString(t *testing.T) {
	assert.Equal(t, "solid", Solid.String())
	assert.Equal(t, "pattern 0", Pattern(0).String())
	assert.Equal(t, "pattern 4", Pattern(4).String())
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "blue", Blue.String())
	assert.Equal(t, "white", White.String())
	assert.Equal(t, "#33ee00", RGB(51, 238, 0).String())
	assert.Equal(t, "#000000", RGB(0, 0, 0).String())
	assert.Equal(t, "#ffffff", RGB(255, 255, 255).String())
}

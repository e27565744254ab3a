package gnuplot

import (
	"testing"

	"github.com/plotforge/go-gnuplot/plot"
)

func benchSeries() []plot.Series {
	points := make([]plot.XY, 1024)
	for i := range points {
		points[i] = plot.XY{X: float64(i), Y: float64(i % 17)}
	}
	return []plot.Series{
		plot.LinesXY(points, plot.WithTitle("bench"), plot.WithColor(plot.Blue)),
		plot.LinesFunc("sin(x)"),
	}
}

func BenchmarkRender(b *testing.B) {
	series := benchSeries()
	opts := []Option{WithTitle("bench"), WithGrid(), WithRange(plot.XRange(0, 1024))}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Render(series, opts...); err != nil {
			b.Fatalf("Render failed: %v", err)
		}
	}
}

// discardChannel swallows scripts so the benchmark measures rendering and
// session overhead, not IO.
type discardChannel struct{}

func (discardChannel) Write(p []byte) (int, error) { return len(p), nil }
func (discardChannel) Close() error                { return nil }

func BenchmarkSessionPlotMany(b *testing.B) {
	s, err := NewSession(WithChannel(discardChannel{}))
	if err != nil {
		b.Fatalf("NewSession failed: %v", err)
	}
	defer s.Close()

	series := benchSeries()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.PlotMany(series); err != nil {
			b.Fatalf("PlotMany failed: %v", err)
		}
	}
}

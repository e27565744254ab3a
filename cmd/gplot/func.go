package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gnuplot "github.com/plotforge/go-gnuplot"
	"github.com/plotforge/go-gnuplot/plot"
	"github.com/plotforge/go-gnuplot/plotfile"
)

var (
	funcTitle  string
	funcColor  string
	funcStyle  string
	funcRange  []float64
	funcGrid   bool
	funcDryRun bool
)

var funcCmd = &cobra.Command{
	Use:   "func <expression> [expression...]",
	Short: "Plot function expressions on the engine",
	Long: `Plot one or more engine function expressions in a single figure.
Expressions are passed to the engine verbatim and evaluated there.`,
	Example: `  gplot func 'sin(x)'
  gplot func --range=-10,10,-1.5,1.5 --grid 'sin(x)' 'cos(x)'
  gplot func --dry-run 'besj0(x)*0.12e1'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFunc,
}

func init() {
	funcCmd.Flags().StringVar(&funcTitle, "title", "", "Figure title")
	funcCmd.Flags().StringVar(&funcColor, "color", "", "Series color (name or #rrggbb)")
	funcCmd.Flags().StringVar(&funcStyle, "style", "lines", "Plot style (lines|points)")
	funcCmd.Flags().Float64SliceVar(&funcRange, "range", nil, "Axis range: xmin,xmax or xmin,xmax,ymin,ymax")
	funcCmd.Flags().BoolVar(&funcGrid, "grid", false, "Draw the background grid")
	funcCmd.Flags().BoolVar(&funcDryRun, "dry-run", false, "Print the script instead of plotting")
}

func runFunc(_ *cobra.Command, args []string) error {
	var seriesOpts []plot.SeriesOption
	if funcColor != "" {
		c, err := plotfile.ParseColor(funcColor)
		if err != nil {
			return err
		}
		seriesOpts = append(seriesOpts, plot.WithColor(c))
	}

	series := make([]plot.Series, 0, len(args))
	for _, expr := range args {
		switch funcStyle {
		case "lines":
			series = append(series, plot.LinesFunc(expr, seriesOpts...))
		case "points":
			series = append(series, plot.PointsFunc(expr, seriesOpts...))
		default:
			return fmt.Errorf("unknown style %q", funcStyle)
		}
	}

	figOpts, err := funcFigureOptions()
	if err != nil {
		return err
	}

	if funcDryRun {
		script, err := gnuplot.Render(series, figOpts...)
		if err != nil {
			return err
		}
		fmt.Print(script)
		return nil
	}

	gp, err := newEngineSession()
	if err != nil {
		return err
	}
	defer gp.Close()

	return gp.PlotMany(series, figOpts...)
}

func funcFigureOptions() ([]gnuplot.Option, error) {
	var opts []gnuplot.Option
	if funcTitle != "" {
		opts = append(opts, gnuplot.WithTitle(funcTitle))
	}
	if funcGrid {
		opts = append(opts, gnuplot.WithGrid())
	}
	switch len(funcRange) {
	case 0:
	case 2:
		opts = append(opts, gnuplot.WithRange(plot.XRange(funcRange[0], funcRange[1])))
	case 4:
		opts = append(opts, gnuplot.WithRange(plot.XYRange(funcRange[0], funcRange[1], funcRange[2], funcRange[3])))
	default:
		return nil, fmt.Errorf("--range wants 2 or 4 numbers, got %d", len(funcRange))
	}
	return opts, nil
}

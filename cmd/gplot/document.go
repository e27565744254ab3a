package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gnuplot "github.com/plotforge/go-gnuplot"
	"github.com/plotforge/go-gnuplot/plot"
	"github.com/plotforge/go-gnuplot/plotfile"
)

var renderCmd = &cobra.Command{
	Use:   "render <document.yaml>",
	Short: "Render a plot document to script text",
	Long: `Validate a YAML plot document and print the exact script that the plot
command would send to the engine. No engine is involved.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var plotCmd = &cobra.Command{
	Use:   "plot <document.yaml>",
	Short: "Plot a plot document on the engine",
	Long:  `Validate a YAML plot document and plot it on the configured engine.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPlot,
}

func loadFigure(path string) ([]plot.Series, []gnuplot.Option, error) {
	doc, err := plotfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return doc.Figure()
}

func runRender(_ *cobra.Command, args []string) error {
	series, opts, err := loadFigure(args[0])
	if err != nil {
		return err
	}
	script, err := gnuplot.Render(series, opts...)
	if err != nil {
		return err
	}
	fmt.Print(script)
	return nil
}

func runPlot(_ *cobra.Command, args []string) error {
	series, opts, err := loadFigure(args[0])
	if err != nil {
		return err
	}

	gp, err := newEngineSession()
	if err != nil {
		return err
	}
	defer gp.Close()

	return gp.PlotMany(series, opts...)
}

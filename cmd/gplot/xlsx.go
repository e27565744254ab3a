package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	gnuplot "github.com/plotforge/go-gnuplot"
	"github.com/plotforge/go-gnuplot/plot"
)

var (
	xlsxSheet string
	xlsxXCol  int
	xlsxYCol  int
	xlsxSkip  int
	xlsxStyle string
	xlsxTitle string
	xlsxLive  bool
)

var xlsxCmd = &cobra.Command{
	Use:   "xlsx <workbook.xlsx>",
	Short: "Plot a spreadsheet column",
	Long: `Read one numeric column from a workbook sheet and plot it, optionally
against a second column of x values. Blank cells skip their row; any other
non-numeric cell is an error.

With header rows skipped via --skip, the first skipped row provides the
series title unless --title overrides it.`,
	Example: `  gplot xlsx revenue.xlsx --y-col 2 --skip 1
  gplot xlsx samples.xlsx --x-col 1 --y-col 3 --style points --live`,
	Args: cobra.ExactArgs(1),
	RunE: runXlsx,
}

func init() {
	xlsxCmd.Flags().StringVar(&xlsxSheet, "sheet", "", "Sheet name (default: first sheet)")
	xlsxCmd.Flags().IntVar(&xlsxXCol, "x-col", 0, "1-based x column (0 plots y against row order)")
	xlsxCmd.Flags().IntVar(&xlsxYCol, "y-col", 1, "1-based y column")
	xlsxCmd.Flags().IntVar(&xlsxSkip, "skip", 0, "Header rows to skip")
	xlsxCmd.Flags().StringVar(&xlsxStyle, "style", "lines", "Plot style (lines|points|steps|histogram)")
	xlsxCmd.Flags().StringVar(&xlsxTitle, "title", "", "Series title")
	xlsxCmd.Flags().BoolVar(&xlsxLive, "live", false, "Send to the engine instead of printing the script")
}

func runXlsx(_ *cobra.Command, args []string) error {
	if xlsxYCol < 1 {
		return fmt.Errorf("--y-col must be a 1-based column, got %d", xlsxYCol)
	}
	if xlsxXCol < 0 {
		return fmt.Errorf("--x-col must be a 1-based column or 0, got %d", xlsxXCol)
	}

	wb, err := excelize.OpenFile(args[0])
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheet := xlsxSheet
	if sheet == "" {
		sheet = wb.GetSheetName(0)
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	series, err := columnSeries(rows)
	if err != nil {
		return fmt.Errorf("sheet %q: %w", sheet, err)
	}

	if !xlsxLive {
		script, err := gnuplot.Render([]plot.Series{series})
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

	return gp.Plot(series)
}

// columnSeries extracts the configured columns from sheet rows and builds
// the series to plot.
func columnSeries(rows [][]string) (plot.Series, error) {
	title := xlsxTitle
	if title == "" && xlsxSkip > 0 && len(rows) > 0 {
		if header, ok := cell(rows[0], xlsxYCol); ok {
			title = header
		}
	}

	var (
		ys []float64
		xy []plot.XY
	)
	for i, row := range rows {
		if i < xlsxSkip {
			continue
		}
		y, ok, err := cellFloat(row, xlsxYCol)
		if err != nil {
			return plot.Series{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		if !ok {
			continue
		}
		if xlsxXCol > 0 {
			x, ok, err := cellFloat(row, xlsxXCol)
			if err != nil {
				return plot.Series{}, fmt.Errorf("row %d: %w", i+1, err)
			}
			if !ok {
				continue
			}
			xy = append(xy, plot.XY{X: x, Y: y})
		} else {
			ys = append(ys, y)
		}
	}

	var opts []plot.SeriesOption
	if title != "" {
		opts = append(opts, plot.WithTitle(title))
	}

	paired := xlsxXCol > 0
	switch xlsxStyle {
	case "lines":
		if paired {
			return plot.LinesXY(xy, opts...), nil
		}
		return plot.Lines(ys, opts...), nil
	case "points":
		if paired {
			return plot.PointsXY(xy, opts...), nil
		}
		return plot.Points(ys, opts...), nil
	case "steps":
		if paired {
			return plot.StepsXY(xy, opts...), nil
		}
		return plot.Steps(ys, opts...), nil
	case "histogram":
		if paired {
			return plot.Series{}, fmt.Errorf("histogram plots a single column; drop --x-col")
		}
		return plot.Histogram(ys, opts...), nil
	default:
		return plot.Series{}, fmt.Errorf("unknown style %q", xlsxStyle)
	}
}

// cell returns the trimmed cell text of a 1-based column, reporting whether
// the cell exists and is non-blank.
func cell(row []string, col int) (string, bool) {
	if col > len(row) {
		return "", false
	}
	text := strings.TrimSpace(row[col-1])
	return text, text != ""
}

// cellFloat parses the cell as a float. Blank and missing cells report
// ok=false; malformed numbers are errors.
func cellFloat(row []string, col int) (float64, bool, error) {
	text, ok := cell(row, col)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false, fmt.Errorf("column %d: %q is not a number", col, text)
	}
	return v, true, nil
}

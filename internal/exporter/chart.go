package exporter

import (
	"fmt"
	"math"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"pecli/internal/penetration"
)

// WriteChart renders penetration efficiency against bin center as a PNG
// line-and-marker series on a logarithmic X axis. Bins with undefined
// efficiency (NaN or ±Inf) are omitted from the plot; they remain visible
// in the table and CSV output.
func WriteChart(path string, report *penetration.Report) error {
	var xs, ys []float64
	for _, r := range report.Rows {
		if math.IsNaN(r.Penetration) || math.IsInf(r.Penetration, 0) {
			continue
		}
		xs = append(xs, r.Bin)
		ys = append(ys, r.Penetration)
	}
	if len(xs) == 0 {
		return fmt.Errorf("no defined efficiency values to chart")
	}
	// Pad to at least two X values for go-chart
	if len(xs) == 1 {
		xs = append(xs, xs[0]*1.001)
		ys = append(ys, ys[0])
	}

	gridStyle := chart.Style{
		StrokeColor:     chart.ColorAlternateGray,
		StrokeWidth:     0.5,
		StrokeDashArray: []float64{2.0, 2.0},
	}

	graph := chart.Chart{
		Width:  800,
		Height: 500,
		XAxis: chart.XAxis{
			Name:           report.Unit.AxisLabel(),
			Range:          &chart.LogarithmicRange{},
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           "Penetration Efficiency (%)",
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 1.5,
					DotWidth:    4,
				},
			},
		},
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

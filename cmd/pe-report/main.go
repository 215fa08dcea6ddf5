// pe-report computes a penetration efficiency curve for one instrument
// export: it reads a workbook sheet, builds the canonical binned series,
// averages counts over the upstream and downstream time windows, applies
// the flow correction factors, and renders the result as a table with
// optional CSV and chart artifacts.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pecli/internal/config"
	"pecli/internal/exporter"
	"pecli/internal/factor"
	"pecli/internal/gridsource"
	"pecli/internal/infrastructure"
	"pecli/internal/penetration"
	"pecli/internal/timeseries"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults to pe-report.yml if present)")
	file := flag.String("file", "", "path to the instrument .xlsx export")
	sheet := flag.String("sheet", "", "sheet name (default from config, normally Sheet1)")
	instrument := flag.String("instrument", "", "instrument type: optical or mobility")
	upStart := flag.String("up-start", "", "inclusive start of the upstream window")
	upEnd := flag.String("up-end", "", "inclusive end of the upstream window")
	downStart := flag.String("down-start", "", "inclusive start of the downstream window")
	downEnd := flag.String("down-end", "", "inclusive end of the downstream window")
	upFactor := flag.String("up-factor", "", "upstream correction factor expression (e.g. 1375/800); prompted if empty")
	downFactor := flag.String("down-factor", "", "downstream correction factor expression; prompted if empty")
	chartPath := flag.String("chart", "", "write a PNG chart to this path")
	csvPath := flag.String("csv", "", "write a CSV report to this path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags override file and environment configuration.
	if *file != "" {
		cfg.Input.File = *file
	}
	if *sheet != "" {
		cfg.Input.Sheet = *sheet
	}
	if *instrument != "" {
		cfg.Input.Instrument = *instrument
	}
	if *chartPath != "" {
		cfg.Output.ChartPath = *chartPath
	}
	if *csvPath != "" {
		cfg.Output.CSVPath = *csvPath
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Input.File == "" {
		slog.Error("No input file given", "hint", "pass -file or set input.file in the config")
		os.Exit(1)
	}
	if *upStart == "" || *upEnd == "" || *downStart == "" || *downEnd == "" {
		slog.Error("All four window bounds are required",
			"hint", "pass -up-start, -up-end, -down-start and -down-end")
		os.Exit(1)
	}

	baseLogger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	logger := baseLogger.With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	logger.Info("Loading workbook",
		"file", cfg.Input.File,
		"sheet", cfg.Input.Sheet,
		"instrument", cfg.Input.Instrument)

	grid, err := gridsource.Load(cfg.Input.File, cfg.Input.Sheet)
	if err != nil {
		logger.Error("Failed to load workbook", "error", err)
		os.Exit(1)
	}

	var series *timeseries.Series
	switch cfg.Input.Instrument {
	case config.InstrumentMobility:
		series, err = timeseries.ParseMobilityGrid(grid, cfg.Input.MobilityOptions())
	default:
		series, err = timeseries.ParseOpticalGrid(grid, cfg.Input.OpticalOptions())
	}
	if err != nil {
		logger.Error("Failed to build time series", "error", err)
		os.Exit(1)
	}
	logger.Info("Built time series",
		"records", series.Len(),
		"bins", len(series.BinCenters()),
		"unit", series.Unit().String())

	// The two windowed means are pure queries over the immutable series, so
	// they run concurrently.
	var upMeans, downMeans *timeseries.MeanResult
	var g errgroup.Group
	g.Go(func() error {
		var err error
		upMeans, err = series.WindowedMeanBetween(*upStart, *upEnd)
		return err
	})
	g.Go(func() error {
		var err error
		downMeans, err = series.WindowedMeanBetween(*downStart, *downEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to compute windowed means", "error", err)
		os.Exit(1)
	}

	// One reader for both prompts: a fresh reader per prompt would buffer
	// past the first line on piped stdin and starve the second read.
	stdin := bufio.NewReader(os.Stdin)
	upF, err := resolveFactor(*upFactor, "Enter upstream factor (e.g. 1375/800): ", stdin)
	if err != nil {
		logger.Error("Invalid upstream factor", "error", err)
		os.Exit(1)
	}
	downF, err := resolveFactor(*downFactor, "Enter downstream factor (e.g. 1330/800): ", stdin)
	if err != nil {
		logger.Error("Invalid downstream factor", "error", err)
		os.Exit(1)
	}
	logger.Info("Correction factors resolved", "upstream", upF, "downstream", downF)

	report, err := penetration.Compute(upMeans, downMeans, upF, downF)
	if err != nil {
		logger.Error("Failed to compute penetration efficiency", "error", err)
		os.Exit(1)
	}

	format := exporter.DefaultFormat()
	exporter.WriteTable(os.Stdout, report, format)

	if cfg.Output.CSVPath != "" {
		if err := exporter.WriteCSV(cfg.Output.CSVPath, report, format); err != nil {
			logger.Error("Failed to write CSV report", "error", err)
			os.Exit(1)
		}
		logger.Info("Wrote CSV report", "path", cfg.Output.CSVPath)
	}
	if cfg.Output.ChartPath != "" {
		if err := exporter.WriteChart(cfg.Output.ChartPath, report); err != nil {
			logger.Error("Failed to write chart", "error", err)
			os.Exit(1)
		}
		logger.Info("Wrote chart", "path", cfg.Output.ChartPath)
	}

	logger.Info("Penetration efficiency report complete", "bins", len(report.Rows))
}

// resolveFactor evaluates the flag value, prompting on the shared reader
// when empty. A final unterminated line still counts as input.
func resolveFactor(flagValue, prompt string, in *bufio.Reader) (float64, error) {
	input := flagValue
	if strings.TrimSpace(input) == "" {
		fmt.Print(prompt)
		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(line) != "") {
			return 0, fmt.Errorf("read factor: %w", err)
		}
		input = line
	}
	return factor.Evaluate(input)
}

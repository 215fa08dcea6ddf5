package penetration

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pecli/internal/timeseries"
)

// meansFor builds a MeanResult with the given bins and per-bin counts by
// querying a one-record series.
func meansFor(t *testing.T, unit timeseries.Unit, bins, values []float64) *timeseries.MeanResult {
	t.Helper()
	ts := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	series, err := timeseries.NewSeries(unit, bins, []timeseries.Record{
		{Timestamp: ts, Counts: values},
	})
	require.NoError(t, err)
	means, err := series.WindowedMean(ts, ts)
	require.NoError(t, err)
	return means
}

// TestComputeCorrectionArithmetic verifies the corrected means and ratio.
func TestComputeCorrectionArithmetic(t *testing.T) {
	up := meansFor(t, timeseries.Micrometre, []float64{0.3}, []float64{100})
	down := meansFor(t, timeseries.Micrometre, []float64{0.3}, []float64{50})

	report, err := Compute(up, down, 2, 1.5)
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)

	row := report.Rows[0]
	assert.Equal(t, 0.3, row.Bin)
	assert.Equal(t, 100.0, row.OriginalUpstream)
	assert.Equal(t, 50.0, row.OriginalDownstream)
	assert.Equal(t, 200.0, row.CorrectedUpstream)
	assert.Equal(t, 75.0, row.CorrectedDownstream)
	assert.Equal(t, 37.5, row.Penetration)
	assert.Equal(t, timeseries.Micrometre, report.Unit)
}

// TestComputeZeroDenominator verifies a zero corrected upstream yields an
// infinite sentinel, not an error and not zero.
func TestComputeZeroDenominator(t *testing.T) {
	up := meansFor(t, timeseries.Micrometre, []float64{0.3}, []float64{0})
	down := meansFor(t, timeseries.Micrometre, []float64{0.3}, []float64{10})

	report, err := Compute(up, down, 1, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(report.Rows[0].Penetration, 1))
}

// TestComputeMissingPropagation verifies an all-missing source bin flows
// through as NaN in the corrected values and the ratio.
func TestComputeMissingPropagation(t *testing.T) {
	up := meansFor(t, timeseries.Nanometre, []float64{10.4}, []float64{math.NaN()})
	down := meansFor(t, timeseries.Nanometre, []float64{10.4}, []float64{600})

	report, err := Compute(up, down, 1.5, 1.5)
	require.NoError(t, err)

	row := report.Rows[0]
	assert.True(t, math.IsNaN(row.OriginalUpstream))
	assert.True(t, math.IsNaN(row.CorrectedUpstream))
	assert.True(t, math.IsNaN(row.Penetration))
	assert.Equal(t, 900.0, row.CorrectedDownstream)
}

// TestComputeBinOrderPreserved verifies report rows follow the series' bin
// order.
func TestComputeBinOrderPreserved(t *testing.T) {
	bins := []float64{0.5, 0.25, 0.3}
	up := meansFor(t, timeseries.Micrometre, bins, []float64{10, 20, 30})
	down := meansFor(t, timeseries.Micrometre, bins, []float64{1, 2, 3})

	report, err := Compute(up, down, 1, 1)
	require.NoError(t, err)

	got := make([]float64, len(report.Rows))
	for i, r := range report.Rows {
		got[i] = r.Bin
	}
	assert.Equal(t, bins, got)
}

// TestComputePreconditionErrors tests rejected input combinations.
func TestComputePreconditionErrors(t *testing.T) {
	up := meansFor(t, timeseries.Micrometre, []float64{0.3}, []float64{100})

	t.Run("bin center mismatch", func(t *testing.T) {
		down := meansFor(t, timeseries.Micrometre, []float64{0.5}, []float64{50})
		_, err := Compute(up, down, 1, 1)
		assert.Error(t, err)
	})

	t.Run("bin count mismatch", func(t *testing.T) {
		down := meansFor(t, timeseries.Micrometre, []float64{0.3, 0.5}, []float64{50, 60})
		_, err := Compute(up, down, 1, 1)
		assert.Error(t, err)
	})

	t.Run("unit mismatch", func(t *testing.T) {
		down := meansFor(t, timeseries.Nanometre, []float64{0.3}, []float64{50})
		_, err := Compute(up, down, 1, 1)
		assert.Error(t, err)
	})

	t.Run("non-finite factor", func(t *testing.T) {
		down := meansFor(t, timeseries.Micrometre, []float64{0.3}, []float64{50})
		_, err := Compute(up, down, math.NaN(), 1)
		assert.Error(t, err)
		_, err = Compute(up, down, 1, math.Inf(1))
		assert.Error(t, err)
	})
}

// TestComputeDeterministic verifies identical inputs yield identical
// reports and the inputs are not mutated.
func TestComputeDeterministic(t *testing.T) {
	up := meansFor(t, timeseries.Micrometre, []float64{0.25, 0.3}, []float64{100, 80})
	down := meansFor(t, timeseries.Micrometre, []float64{0.25, 0.3}, []float64{50, 40})

	first, err := Compute(up, down, 1.71875, 1.6625)
	require.NoError(t, err)
	second, err := Compute(up, down, 1.71875, 1.6625)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []float64{100, 80}, up.Means())
}

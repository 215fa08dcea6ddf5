// Package penetration computes the per-bin penetration efficiency curve
// from two windowed-mean results and their flow correction factors.
package penetration

import (
	"fmt"
	"math"

	"pecli/internal/timeseries"
)

// Row holds one bin's original and corrected means and its penetration
// efficiency percentage. Undefined values (zero corrected upstream, or an
// all-missing source bin) are carried as NaN/±Inf, not errors; display is
// the renderer's concern.
type Row struct {
	Bin                 float64
	OriginalUpstream    float64
	OriginalDownstream  float64
	CorrectedUpstream   float64
	CorrectedDownstream float64
	Penetration         float64
}

// Report is the engine's output: one row per bin center, in the order the
// source series established. Consumers treat it as read-only.
type Report struct {
	Unit timeseries.Unit
	Rows []Row
}

// Compute derives the penetration efficiency report from upstream and
// downstream windowed means. Both results must come from the same series
// shape: identical unit and identical bin centers in identical order.
//
// Per bin: correctedUp = origUp*upFactor, correctedDown = origDown*downFactor,
// pe = correctedDown/correctedUp * 100 under IEEE semantics. Compute is pure;
// identical inputs yield identical reports.
func Compute(up, down *timeseries.MeanResult, upFactor, downFactor float64) (*Report, error) {
	if math.IsNaN(upFactor) || math.IsInf(upFactor, 0) {
		return nil, fmt.Errorf("upstream factor %v is not finite", upFactor)
	}
	if math.IsNaN(downFactor) || math.IsInf(downFactor, 0) {
		return nil, fmt.Errorf("downstream factor %v is not finite", downFactor)
	}
	if up.Unit() != down.Unit() {
		return nil, fmt.Errorf("unit mismatch: upstream %s, downstream %s", up.Unit(), down.Unit())
	}
	upBins, downBins := up.BinCenters(), down.BinCenters()
	if len(upBins) != len(downBins) {
		return nil, fmt.Errorf("bin count mismatch: upstream %d, downstream %d", len(upBins), len(downBins))
	}
	for i := range upBins {
		if upBins[i] != downBins[i] {
			return nil, fmt.Errorf("bin center mismatch at index %d: upstream %v, downstream %v",
				i, upBins[i], downBins[i])
		}
	}

	upMeans, downMeans := up.Means(), down.Means()
	rows := make([]Row, len(upBins))
	for i := range upBins {
		corrUp := upMeans[i] * upFactor
		corrDown := downMeans[i] * downFactor
		rows[i] = Row{
			Bin:                 upBins[i],
			OriginalUpstream:    upMeans[i],
			OriginalDownstream:  downMeans[i],
			CorrectedUpstream:   corrUp,
			CorrectedDownstream: corrDown,
			Penetration:         corrDown / corrUp * 100,
		}
	}

	return &Report{Unit: up.Unit(), Rows: rows}, nil
}

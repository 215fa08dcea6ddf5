package timeseries

import (
	"math"
	"time"
)

// MeanResult holds per-bin windowed means in the series' bin order.
type MeanResult struct {
	unit  Unit
	bins  []float64
	means []float64
}

// Unit returns the native size unit of the source series.
func (m *MeanResult) Unit() Unit {
	return m.unit
}

// BinCenters returns a copy of the bin centers in source order.
func (m *MeanResult) BinCenters() []float64 {
	out := make([]float64, len(m.bins))
	copy(out, m.bins)
	return out
}

// Means returns a copy of the per-bin means, aligned with BinCenters.
// A bin whose matching records were all missing carries NaN.
func (m *MeanResult) Means() []float64 {
	out := make([]float64, len(m.means))
	copy(out, m.means)
	return out
}

// Len returns the number of bins.
func (m *MeanResult) Len() int {
	return len(m.bins)
}

// WindowedMean computes the per-bin arithmetic mean over every record whose
// timestamp t satisfies start <= t <= end. The filter is over timestamp
// values, not row positions, so unsorted series behave identically.
//
// Missing counts are excluded from their bin's mean; a bin whose matching
// records are all missing yields NaN, which downstream ratio computation
// tolerates. Zero matching records is an *EmptyWindowError rather than an
// all-NaN result: an empty window almost always means a mistyped bound.
func (s *Series) WindowedMean(start, end time.Time) (*MeanResult, error) {
	sums := make([]float64, len(s.bins))
	counts := make([]int, len(s.bins))
	matched := 0

	for _, rec := range s.records {
		if rec.Timestamp.Before(start) || rec.Timestamp.After(end) {
			continue
		}
		matched++
		for j, v := range rec.Counts {
			if IsMissing(v) {
				continue
			}
			sums[j] += v
			counts[j]++
		}
	}

	if matched == 0 {
		return nil, &EmptyWindowError{Start: start, End: end}
	}

	means := make([]float64, len(s.bins))
	for j := range means {
		if counts[j] == 0 {
			means[j] = math.NaN()
			continue
		}
		means[j] = sums[j] / float64(counts[j])
	}

	bins := make([]float64, len(s.bins))
	copy(bins, s.bins)
	return &MeanResult{unit: s.unit, bins: bins, means: means}, nil
}

// WindowedMeanBetween is WindowedMean with string bounds parsed by the
// generic timestamp parser.
func (s *Series) WindowedMeanBetween(start, end string) (*MeanResult, error) {
	startT, err := ParseTimestamp(start)
	if err != nil {
		return nil, err
	}
	endT, err := ParseTimestamp(end)
	if err != nil {
		return nil, err
	}
	return s.WindowedMean(startT, endT)
}

package timeseries

import (
	"fmt"
	"math"
	"time"
)

// Unit identifies the native size unit of an instrument's bin centers.
// The two instrument families report in different units and no conversion
// is performed between them.
type Unit int

const (
	// Micrometre is the optical particle counter's native unit.
	Micrometre Unit = iota
	// Nanometre is the mobility sizer's native unit.
	Nanometre
)

// String returns the unit symbol.
func (u Unit) String() string {
	switch u {
	case Micrometre:
		return "µm"
	case Nanometre:
		return "nm"
	default:
		return "unknown"
	}
}

// Label returns the size column header used in tabular output.
func (u Unit) Label() string {
	return fmt.Sprintf("Size (%s)", u)
}

// AxisLabel returns the chart X-axis label.
func (u Unit) AxisLabel() string {
	return fmt.Sprintf("Particle diameter (%s)", u)
}

// IsMissing reports whether a count value is the missing marker.
// Blank cells are stored as NaN and excluded from means.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// Record is one row of a Series: a timestamp and one count per bin center,
// in bin-center order.
type Record struct {
	Timestamp time.Time
	Counts    []float64
}

// Series is the canonical size-binned time series produced by an adapter.
// Bin centers keep their source order and are identical across all records.
// A Series is immutable after construction.
type Series struct {
	unit    Unit
	bins    []float64
	records []Record
}

// NewSeries validates and assembles a Series. Bin centers must be positive
// and unique; every record must carry exactly one count per bin. Records
// are kept in source order, which need not be sorted.
func NewSeries(unit Unit, bins []float64, records []Record) (*Series, error) {
	if len(bins) == 0 {
		return nil, fmt.Errorf("series requires at least one bin center")
	}
	seen := make(map[float64]struct{}, len(bins))
	for i, b := range bins {
		if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
			return nil, fmt.Errorf("bin center %v at index %d must be a positive number", b, i)
		}
		if _, dup := seen[b]; dup {
			return nil, fmt.Errorf("duplicate bin center %v at index %d", b, i)
		}
		seen[b] = struct{}{}
	}
	for i, r := range records {
		if len(r.Counts) != len(bins) {
			return nil, fmt.Errorf("record %d has %d counts, want %d", i, len(r.Counts), len(bins))
		}
	}
	return &Series{unit: unit, bins: bins, records: records}, nil
}

// Unit returns the series' native size unit.
func (s *Series) Unit() Unit {
	return s.unit
}

// BinCenters returns a copy of the bin centers in source order.
func (s *Series) BinCenters() []float64 {
	out := make([]float64, len(s.bins))
	copy(out, s.bins)
	return out
}

// Len returns the number of records in the series.
func (s *Series) Len() int {
	return len(s.records)
}

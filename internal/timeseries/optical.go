package timeseries

// OpticalOptions configures the optical particle counter adapter.
type OpticalOptions struct {
	// FirstDataCol is the zero-based column where bin centers and counts
	// begin. Column 0 holds the timestamps.
	FirstDataCol int
}

// DefaultOpticalOptions returns the standard optical export layout:
// timestamps in column A, bins from column B.
func DefaultOpticalOptions() OpticalOptions {
	return OpticalOptions{FirstDataCol: 1}
}

// ParseOpticalGrid builds a Series from an optical particle counter export.
//
// Expected layout:
//   - row 0: bucket labels (ignored)
//   - row 1: bin centers in µm from FirstDataCol
//   - rows 2+: a leading timestamp cell followed by per-bin counts
func ParseOpticalGrid(grid [][]string, opts OpticalOptions) (*Series, error) {
	if len(grid) < 2 {
		return nil, &BinCenterError{Column: opts.FirstDataCol, Value: ""}
	}
	bins, err := parseBinRow(grid[1], opts.FirstDataCol)
	if err != nil {
		return nil, err
	}

	var records []Record
	for i := 2; i < len(grid); i++ {
		row := grid[i]
		if isBlankRow(row) {
			continue
		}
		ts, err := ParseTimestamp(cellAt(row, 0))
		if err != nil {
			return nil, &TimestampError{Row: i, Value: cellAt(row, 0)}
		}
		counts, err := parseCountCells(row, i, opts.FirstDataCol, len(bins))
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Timestamp: ts, Counts: counts})
	}

	return NewSeries(Micrometre, bins, records)
}

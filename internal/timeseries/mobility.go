package timeseries

import "strings"

// MobilityOptions configures the mobility sizer adapter.
type MobilityOptions struct {
	// DateCol holds YYMMDD dates, possibly as bare numbers.
	DateCol int
	// TimeCol holds times as either 12-hour (with AM/PM) or 24-hour text.
	TimeCol int
	// FirstDataCol is the zero-based column where bin centers and counts
	// begin.
	FirstDataCol int
}

// DefaultMobilityOptions returns the standard mobility export layout:
// date in column A, time in column B, bins from column C.
func DefaultMobilityOptions() MobilityOptions {
	return MobilityOptions{DateCol: 0, TimeCol: 1, FirstDataCol: 2}
}

// ParseMobilityGrid builds a Series from a scanning mobility particle sizer
// export.
//
// Expected layout:
//   - row 1: bin centers in nm from FirstDataCol
//   - rows 2+: a YYMMDD date cell, a time cell, then per-bin counts
//
// Each row's timestamp is the zero-padded date joined with the trimmed time,
// parsed 12-hour first with a per-row 24-hour fallback. A row failing both
// is fatal; mixed encodings within one file are expected, malformed rows
// are not.
func ParseMobilityGrid(grid [][]string, opts MobilityOptions) (*Series, error) {
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
		raw := padDate(cellAt(row, opts.DateCol)) + " " + strings.TrimSpace(cellAt(row, opts.TimeCol))
		ts, err := parseMobilityTimestamp(raw)
		if err != nil {
			return nil, &TimestampError{Row: i, Value: raw}
		}
		counts, err := parseCountCells(row, i, opts.FirstDataCol, len(bins))
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Timestamp: ts, Counts: counts})
	}

	return NewSeries(Nanometre, bins, records)
}

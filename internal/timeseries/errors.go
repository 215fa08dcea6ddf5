package timeseries

import (
	"fmt"
	"time"
)

// BinCenterError reports a bin-center header cell that is not a positive
// number, a duplicate bin center, or a first-data-column outside the grid.
// Column is always the zero-based grid column of the offending cell.
type BinCenterError struct {
	Column    int
	Value     string
	Duplicate bool
}

func (e *BinCenterError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("duplicate bin center %q in column %d", e.Value, e.Column)
	}
	return fmt.Sprintf("malformed bin center %q in column %d", e.Value, e.Column)
}

// TimestampError reports a timestamp cell that matched none of the accepted
// formats after all fallbacks. Row is the zero-based grid row index.
type TimestampError struct {
	Row   int
	Value string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("unparseable timestamp %q in row %d", e.Value, e.Row)
}

// CountError reports a count cell that is non-blank and non-numeric.
type CountError struct {
	Row    int
	Column int
	Value  string
}

func (e *CountError) Error() string {
	return fmt.Sprintf("malformed count %q in row %d column %d", e.Value, e.Row, e.Column)
}

// EmptyWindowError reports a windowed-mean query whose inclusive time range
// matched no records. A mean over zero rows almost always means a mistyped
// window, so it is surfaced rather than returned as an all-NaN result.
type EmptyWindowError struct {
	Start time.Time
	End   time.Time
}

func (e *EmptyWindowError) Error() string {
	return fmt.Sprintf("no records in window [%s, %s]",
		e.Start.Format(time.DateTime), e.End.Format(time.DateTime))
}

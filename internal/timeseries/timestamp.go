package timeseries

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// timestampLayouts are the candidate formats for the generic timestamp
// parser, tried in order. Sheets exported from different tools carry ISO
// strings, slash dates with two- or four-digit years, 12-hour clocks, or
// bare times, so the list covers all of them.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04",
	"1/2/06 15:04:05",
	"1/2/06 3:04:05 PM",
	"1/2/06 15:04",
	"01-02-06 15:04",
	"15:04:05",
	"3:04:05 PM",
	"15:04",
}

// Excel serial dates are only accepted inside this range; it covers years
// 1900 through roughly 2173 and keeps six-digit YYMMDD integers from being
// misread as serials.
const (
	minExcelSerial = 1
	maxExcelSerial = 100000
)

// ParseTimestamp parses a raw timestamp cell with the generic format list,
// falling back to Excel serial-number conversion for date-formatted cells
// that excelize surfaces as raw numbers.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil &&
		serial >= minExcelSerial && serial < maxExcelSerial {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp %q matches no known format", s)
}

// mobilityLayouts are the two-stage per-row fallback for the mobility
// sizer's reconstructed "YYMMDD time" strings. Real exports mix 12-hour and
// 24-hour encodings across rows of the same file, so the fallback is
// applied per row, not per file.
var mobilityLayouts = []string{
	"060102 3:04:05 PM",
	"060102 15:04:05",
}

// parseMobilityTimestamp parses one reconstructed date-time string with the
// 12-hour layout first and the 24-hour layout second.
func parseMobilityTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range mobilityLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// padDate normalizes a raw date cell to the six-character YYMMDD form.
// Sheets store the column numerically, so leading zeros are lost and a
// value like 60102 must become "060102".
func padDate(cell string) string {
	s := strings.TrimSpace(cell)
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) && f >= 0 {
		return fmt.Sprintf("%06d", int64(f))
	}
	for len(s) < 6 {
		s = "0" + s
	}
	return s
}

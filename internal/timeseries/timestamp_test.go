package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseTimestamp tests the generic timestamp parser across the
// encodings real exports carry.
func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "ISO date-time",
			input:    "2025-06-03 15:46:03",
			expected: time.Date(2025, 6, 3, 15, 46, 3, 0, time.UTC),
		},
		{
			name:     "ISO with T separator",
			input:    "2025-06-03T15:46:03",
			expected: time.Date(2025, 6, 3, 15, 46, 3, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2025-06-03",
			expected: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "slash date with 12-hour clock",
			input:    "6/3/2025 3:46:03 PM",
			expected: time.Date(2025, 6, 3, 15, 46, 3, 0, time.UTC),
		},
		{
			name:     "slash date with two-digit year",
			input:    "6/3/25 15:46:03",
			expected: time.Date(2025, 6, 3, 15, 46, 3, 0, time.UTC),
		},
		{
			name:     "time only",
			input:    "09:05:00",
			expected: time.Date(0, 1, 1, 9, 5, 0, 0, time.UTC),
		},
		{
			name:     "short time only",
			input:    "09:05",
			expected: time.Date(0, 1, 1, 9, 5, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace",
			input:    "  2025-06-03 15:46:03  ",
			expected: time.Date(2025, 6, 3, 15, 46, 3, 0, time.UTC),
		},
		{
			name:     "excel serial number",
			input:    "45811",
			expected: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "want %s, got %s", tt.expected, got)
		})
	}
}

// TestParseTimestampErrors tests rejection of unparseable cells.
func TestParseTimestampErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty cell", ""},
		{"whitespace only", "   "},
		{"free text", "not a timestamp"},
		{"six-digit YYMMDD is not a serial", "250603"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimestamp(tt.input)
			assert.Error(t, err)
		})
	}
}

// TestPadDate tests YYMMDD normalization of raw date cells.
func TestPadDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already six digits", "250603", "250603"},
		{"numeric cell lost a leading zero", "60102", "060102"},
		{"numeric cell with decimal point", "60102.0", "060102"},
		{"whitespace trimmed", " 250603 ", "250603"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, padDate(tt.input))
		})
	}
}

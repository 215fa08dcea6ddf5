package timeseries

import (
	"math"
	"strconv"
	"strings"
)

// cellAt returns the cell at column idx, or "" when the row is shorter.
// excelize trims trailing empty cells, so a short row means blanks.
func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// isBlankRow reports whether every cell in the row is empty or whitespace.
// Exports often carry trailing padding rows; they are skipped, not parsed.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseBinRow extracts bin centers from the header row starting at
// firstDataCol. Every cell from there on must be a unique positive number;
// errors report the grid column of the offending cell.
func parseBinRow(row []string, firstDataCol int) ([]float64, error) {
	if firstDataCol < 0 || firstDataCol >= len(row) {
		return nil, &BinCenterError{Column: firstDataCol, Value: ""}
	}
	bins := make([]float64, 0, len(row)-firstDataCol)
	seen := make(map[float64]struct{}, len(row)-firstDataCol)
	for j := firstDataCol; j < len(row); j++ {
		cell := strings.TrimSpace(row[j])
		v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, &BinCenterError{Column: j, Value: row[j]}
		}
		if _, dup := seen[v]; dup {
			return nil, &BinCenterError{Column: j, Value: row[j], Duplicate: true}
		}
		seen[v] = struct{}{}
		bins = append(bins, v)
	}
	return bins, nil
}

// parseCountCells reads one count per bin from a data row. Blank cells
// become the missing marker; non-numeric non-blank cells are fatal.
func parseCountCells(row []string, rowIdx, firstDataCol, numBins int) ([]float64, error) {
	counts := make([]float64, numBins)
	for j := 0; j < numBins; j++ {
		cell := strings.TrimSpace(cellAt(row, firstDataCol+j))
		if cell == "" {
			counts[j] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
		if err != nil {
			return nil, &CountError{Row: rowIdx, Column: firstDataCol + j, Value: cell}
		}
		counts[j] = v
	}
	return counts, nil
}

// Package gridsource reads one named spreadsheet sheet into an untyped
// cell grid. It performs no interpretation of cell contents; adapters in
// the timeseries package own all layout and format knowledge.
package gridsource

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// Grid is a zero-indexed rows × columns view of one sheet. Cells are the
// values excelize surfaces: numeric cells as numeric text, date cells as
// formatted text or raw serial numbers depending on the source cell style.
type Grid = [][]string

// DefaultSheet is the sheet read when none is configured.
const DefaultSheet = "Sheet1"

// Load opens an .xlsx workbook and returns the named sheet as a Grid.
func Load(path, sheet string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q from %s: %w", sheet, path, err)
	}

	slog.Debug("loaded sheet",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("rows", len(rows)))

	return rows, nil
}

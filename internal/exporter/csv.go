package exporter

import (
	"encoding/csv"
	"fmt"
	"os"

	"pecli/internal/penetration"
)

// WriteCSV persists the report rows to a CSV file with the same columns as
// the console table.
func WriteCSV(path string, report *penetration.Report, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header(report)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range report.Rows {
		if err := writer.Write(row(r, format)); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return nil
}

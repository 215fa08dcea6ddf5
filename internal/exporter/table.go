// Package exporter renders penetration-efficiency reports: a console
// table, a CSV report file, and a log-x PNG chart.
package exporter

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"pecli/internal/penetration"
)

// header returns the report column headers with the unit-specific size
// label.
func header(report *penetration.Report) []string {
	return []string{
		report.Unit.Label(),
		"Original Upstream",
		"Original Downstream",
		"Corrected Upstream",
		"Corrected Downstream",
		"Penetration Efficiency (%)",
	}
}

// row renders one report row as display strings.
func row(r penetration.Row, format Format) []string {
	return []string{
		format.Bin(r.Bin),
		format.Float(r.OriginalUpstream),
		format.Float(r.OriginalDownstream),
		format.Float(r.CorrectedUpstream),
		format.Float(r.CorrectedDownstream),
		format.Float(r.Penetration),
	}
}

// WriteTable renders the report as an aligned table, one row per bin
// center in report order.
func WriteTable(w io.Writer, report *penetration.Report, format Format) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header(report))
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	for _, r := range report.Rows {
		table.Append(row(r, format))
	}
	table.Render()
}

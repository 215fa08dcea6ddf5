package exporter

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"pecli/internal/penetration"
	"pecli/internal/timeseries"
)

func sampleReport() *penetration.Report {
	return &penetration.Report{
		Unit: timeseries.Micrometre,
		Rows: []penetration.Row{
			{
				Bin:                 0.3,
				OriginalUpstream:    100,
				OriginalDownstream:  50,
				CorrectedUpstream:   200,
				CorrectedDownstream: 75,
				Penetration:         37.5,
			},
			{
				Bin:                 0.5,
				OriginalUpstream:    0,
				OriginalDownstream:  10,
				CorrectedUpstream:   0,
				CorrectedDownstream: 10,
				Penetration:         math.Inf(1),
			},
		},
	}
}

// TestWriteTable verifies the unit-specific header and that undefined
// values are rendered rather than dropped.
func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleReport(), DefaultFormat())

	out := buf.String()
	assert.Contains(t, out, "Size (µm)")
	assert.Contains(t, out, "Penetration Efficiency (%)")
	assert.Contains(t, out, "37.500000")
	assert.Contains(t, out, "+Inf")
}

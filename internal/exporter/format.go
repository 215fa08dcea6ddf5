package exporter

import "strconv"

// Format carries the float display precision used by the table and CSV
// writers. It is passed explicitly; there is no process-wide formatting
// state.
type Format struct {
	Precision int
}

// DefaultFormat renders floats with six decimal places, the conventional
// display precision for particle-count means.
func DefaultFormat() Format {
	return Format{Precision: 6}
}

// Float formats a mean or efficiency value. NaN and ±Inf keep their Go
// string forms so undefined bins stay visible in the output.
func (f Format) Float(v float64) string {
	return strconv.FormatFloat(v, 'f', f.Precision, 64)
}

// Bin formats a bin-center value with its natural precision.
func (f Format) Bin(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

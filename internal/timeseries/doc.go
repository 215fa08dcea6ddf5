// Package timeseries holds the canonical size-binned time series shared by
// both instrument families and the logic that builds it from raw sheet grids.
//
// # Architecture
//
// The package has three layers:
//
// 1. Series: the canonical {timestamps × bin-centers} matrix
// 2. Adapters: ParseOpticalGrid and ParseMobilityGrid, one per instrument
//    export layout
// 3. WindowedMean: inclusive time-range aggregation over a Series
//
// All layout and timestamp-encoding knowledge lives in the adapters; nothing
// downstream of a Series branches on instrument type.
//
// # Data Flow
//
//	Sheet grid → adapter → Series → WindowedMean → MeanResult
//
// # Missing values
//
// A blank count cell is recorded as math.NaN() and excluded from means. A
// non-blank cell that does not parse as a number is a construction error,
// never a silent zero.
//
// # Error Handling
//
// Construction and query errors are typed (BinCenterError, TimestampError,
// CountError, EmptyWindowError) and carry the row/column identity and raw
// cell value that caused them.
package timeseries

// Package timeseries provides the series container and calendar utilities
// used by the debiasers.
//
// A Series pairs daily values with timestamps. The calendar helpers derive
// the day-of-year and year labels the running-window iteration is keyed on,
// infer timestamps when a caller has none, and validate that values and
// timestamps agree in length.
//
// # Series
//
// Create a series from raw values (daily timestamps are inferred):
//
//	series := timeseries.New(values)
//
// Or with explicit timestamps:
//
//	series, err := timeseries.NewWithTimestamps(times, values)
//
// # Calendar labels
//
// Derive labels for windowed debiasing:
//
//	doy := timeseries.DayOfYear(times)  // values in [1, 366]
//	yrs := timeseries.Years(times)
package timeseries

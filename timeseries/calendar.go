package timeseries

import (
	"errors"
	"fmt"
	"time"
)

// ErrTimeLengthMismatch indicates a time array whose length differs from its
// value array.
var ErrTimeLengthMismatch = errors.New("timeseries: time array and value array must have the same length")

// inferStart is the assumed first day when no time information is given.
// A leap-year start keeps day 366 exercised in inferred runs.
var inferStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// DayOfYear returns the day-of-year label of every timestamp, in [1, 366].
func DayOfYear(times []time.Time) []int {
	days := make([]int, len(times))
	for i, t := range times {
		days[i] = t.YearDay()
	}
	return days
}

// Years returns the calendar year of every timestamp.
func Years(times []time.Time) []int {
	years := make([]int, len(times))
	for i, t := range times {
		years[i] = t.Year()
	}
	return years
}

// InferTimes creates n daily timestamps starting on January 1, 2000.
func InferTimes(n int) []time.Time {
	times := make([]time.Time, n)
	for i := range times {
		times[i] = inferStart.AddDate(0, 0, i)
	}
	return times
}

// InferTimesIfMissing fills in any nil time array with inferred daily
// timestamps of the matching length. Given arrays are passed through.
func InferTimesIfMissing(lengths []int, times [][]time.Time) [][]time.Time {
	out := make([][]time.Time, len(lengths))
	for i, n := range lengths {
		if i < len(times) && times[i] != nil {
			out[i] = times[i]
			continue
		}
		out[i] = InferTimes(n)
	}
	return out
}

// ValidateTimeInfo checks that every value array has a time array of the
// same length.
func ValidateTimeInfo(values [][]float64, times [][]time.Time) error {
	if len(values) != len(times) {
		return fmt.Errorf("%w: got %d value arrays and %d time arrays",
			ErrTimeLengthMismatch, len(values), len(times))
	}
	for i := range values {
		if len(values[i]) != len(times[i]) {
			return fmt.Errorf("%w: array %d has %d values and %d timestamps",
				ErrTimeLengthMismatch, i, len(values[i]), len(times[i]))
		}
	}
	return nil
}

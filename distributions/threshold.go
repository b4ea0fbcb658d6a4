package distributions

// ThresholdCDF clamps CDF values into [threshold, 1-threshold].
//
// Quantile mapping inverts CDF values through a PPF; a sample value at or
// beyond the fitted distribution's theoretical extreme produces a CDF value
// of exactly 0 or 1, whose inverse is unbounded. Clamping keeps the
// subsequent PPF finite. The input slice is not modified.
func ThresholdCDF(vals []float64, threshold float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		switch {
		case v < threshold:
			out[i] = threshold
		case v > 1-threshold:
			out[i] = 1 - threshold
		default:
			out[i] = v
		}
	}
	return out
}

package distributions

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Empirical is the empirical distribution of the fitted sample itself: the
// CDF is the fraction of sample values at or below a point and the PPF is
// the empirical quantile. Counterpart of a histogram distribution when no
// parametric form is appropriate.
type Empirical struct{}

// Fit stores a sorted copy of the sample.
func (Empirical) Fit(data []float64) (Parameters, error) {
	if len(data) == 0 {
		return nil, ErrEmptySample
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	return sorted, nil
}

// CDF returns the empirical cumulative probabilities for x.
func (Empirical) CDF(x []float64, params Parameters) []float64 {
	sorted := params.([]float64)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = stat.CDF(v, stat.Empirical, sorted, nil)
	}
	return out
}

// PPF returns the empirical quantiles for q. q must lie in [0,1].
func (Empirical) PPF(q []float64, params Parameters) []float64 {
	sorted := params.([]float64)
	out := make([]float64, len(q))
	for i, p := range q {
		out[i] = stat.Quantile(p, stat.Empirical, sorted, nil)
	}
	return out
}

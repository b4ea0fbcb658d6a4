package distributions

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is a normal distribution fitted by maximum likelihood.
//
// The default model for near-surface air temperature (tas) in detrended
// quantile mapping.
type Normal struct{}

// Fit estimates mean and standard deviation from the sample.
func (Normal) Fit(data []float64) (Parameters, error) {
	if len(data) == 0 {
		return nil, ErrEmptySample
	}
	var dist distuv.Normal
	dist.Fit(data, nil)
	if dist.Sigma <= 0 {
		return nil, ErrDegenerateSample
	}
	return dist, nil
}

// CDF returns normal cumulative probabilities for x.
func (Normal) CDF(x []float64, params Parameters) []float64 {
	dist := params.(distuv.Normal)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = dist.CDF(v)
	}
	return out
}

// PPF returns normal quantiles for q.
func (Normal) PPF(q []float64, params Parameters) []float64 {
	dist := params.(distuv.Normal)
	out := make([]float64, len(q))
	for i, p := range q {
		out[i] = dist.Quantile(p)
	}
	return out
}

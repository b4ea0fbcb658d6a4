package distributions

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Beta is a four-parameter (location-scale) beta distribution fitted by the
// method of moments. Support bounds are taken from the sample range, padded
// slightly so no observation sits exactly on a bound.
//
// The default model for temperature-like variables in ECDFM, following
// Li et al. 2010.
type Beta struct{}

type betaParams struct {
	dist  distuv.Beta
	loc   float64
	scale float64
}

// betaPad is the relative padding applied to the sample range on each side.
const betaPad = 1e-4

// Fit estimates shape parameters and support bounds from the sample.
func (Beta) Fit(data []float64) (Parameters, error) {
	if len(data) == 0 {
		return nil, ErrEmptySample
	}
	min, err := stats.Min(data)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return nil, err
	}
	span := max - min
	if span <= 0 {
		return nil, ErrDegenerateSample
	}
	loc := min - betaPad*span
	scale := span * (1 + 2*betaPad)

	scaled := make([]float64, len(data))
	for i, v := range data {
		scaled[i] = (v - loc) / scale
	}
	mean, err := stats.Mean(scaled)
	if err != nil {
		return nil, err
	}
	variance, err := stats.PopulationVariance(scaled)
	if err != nil {
		return nil, err
	}
	if variance <= 0 {
		return nil, ErrDegenerateSample
	}

	// Method of moments on the unit interval.
	common := mean*(1-mean)/variance - 1
	if common <= 0 {
		return nil, ErrDegenerateSample
	}
	return betaParams{
		dist:  distuv.Beta{Alpha: mean * common, Beta: (1 - mean) * common},
		loc:   loc,
		scale: scale,
	}, nil
}

// CDF returns beta cumulative probabilities for x.
func (Beta) CDF(x []float64, params Parameters) []float64 {
	p := params.(betaParams)
	out := make([]float64, len(x))
	for i, v := range x {
		y := (v - p.loc) / p.scale
		switch {
		case y <= 0:
			out[i] = 0
		case y >= 1:
			out[i] = 1
		default:
			out[i] = p.dist.CDF(y)
		}
	}
	return out
}

// PPF returns beta quantiles for q.
func (Beta) PPF(q []float64, params Parameters) []float64 {
	p := params.(betaParams)
	out := make([]float64, len(q))
	for i, v := range q {
		out[i] = p.loc + p.scale*p.dist.Quantile(v)
	}
	return out
}

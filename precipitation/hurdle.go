package precipitation

import (
	"math/rand/v2"

	"github.com/sartorproj/godebias/distributions"
)

// HurdleModel is a two-part precipitation model: a probability mass P0 on
// dry days (zero precipitation) and a continuous amounts distribution for
// wet days.
//
//	CDF(x) = P0 + (1-P0) * F_amounts(x)   for x > 0
//	CDF(0) = P0, or a draw from U(0, P0) when randomization is on
//	PPF(q) = 0                            for q <= P0
//	PPF(q) = F_amounts^-1((q-P0)/(1-P0))  for q >  P0
//
// Randomized tie-breaking at the zero boundary spreads dry days over the
// zero-mass probability interval, which avoids every dry day mapping to the
// same corrected value. The random source is seeded explicitly so runs are
// reproducible. A HurdleModel with randomization must not be shared across
// goroutines; provision one per worker.
type HurdleModel struct {
	amounts   distributions.Model
	randomize bool
	rng       *rand.Rand
}

type hurdleParams struct {
	p0      float64
	amounts distributions.Parameters
}

// NewHurdleModel creates a hurdle model over the given amounts distribution.
// src seeds the zero-boundary randomization; with a nil src a fixed seed is
// used.
func NewHurdleModel(amounts distributions.Model, randomize bool, src rand.Source) *HurdleModel {
	if src == nil {
		src = rand.NewPCG(defaultSeed, 0)
	}
	return &HurdleModel{
		amounts:   amounts,
		randomize: randomize,
		rng:       rand.New(src),
	}
}

const defaultSeed = 97

// Fit estimates the dry-day probability and fits the amounts distribution
// to the wet-day values.
func (m *HurdleModel) Fit(data []float64) (distributions.Parameters, error) {
	if len(data) == 0 {
		return nil, distributions.ErrEmptySample
	}
	wet := make([]float64, 0, len(data))
	for _, v := range data {
		if v > 0 {
			wet = append(wet, v)
		}
	}
	if len(wet) == 0 {
		return nil, ErrNoPositiveValues
	}
	amountsParams, err := m.amounts.Fit(wet)
	if err != nil {
		return nil, err
	}
	return hurdleParams{
		p0:      1 - float64(len(wet))/float64(len(data)),
		amounts: amountsParams,
	}, nil
}

// CDF returns hurdle cumulative probabilities for x.
func (m *HurdleModel) CDF(x []float64, params distributions.Parameters) []float64 {
	p := params.(hurdleParams)
	amountsCDF := m.amounts.CDF(x, p.amounts)
	out := make([]float64, len(x))
	for i, v := range x {
		if v <= 0 {
			if m.randomize {
				out[i] = m.rng.Float64() * p.p0
			} else {
				out[i] = p.p0
			}
			continue
		}
		out[i] = p.p0 + (1-p.p0)*amountsCDF[i]
	}
	return out
}

// PPF returns hurdle quantiles for q.
func (m *HurdleModel) PPF(q []float64, params distributions.Parameters) []float64 {
	p := params.(hurdleParams)
	scaled := make([]float64, len(q))
	wetMask := make([]bool, len(q))
	for i, v := range q {
		if v > p.p0 && p.p0 < 1 {
			scaled[i] = (v - p.p0) / (1 - p.p0)
			wetMask[i] = true
		}
	}
	amountsPPF := m.amounts.PPF(scaled, p.amounts)
	out := make([]float64, len(q))
	for i := range q {
		if wetMask[i] {
			out[i] = amountsPPF[i]
		}
	}
	return out
}

package debias

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/sartorproj/godebias/distributions"
)

// Detrending selects how the projected mean shift is removed before
// quantile mapping and restored afterwards.
type Detrending string

const (
	// DetrendingAdditive removes the mean difference between cm_future and
	// cm_hist before mapping and adds it back afterwards. Suited to
	// temperature-like variables.
	DetrendingAdditive Detrending = "additive"
	// DetrendingMultiplicative removes the mean ratio between cm_future
	// and cm_hist before mapping and multiplies it back afterwards. Suited
	// to precipitation-like variables. Undefined when cm_hist has zero
	// mean.
	DetrendingMultiplicative Detrending = "multiplicative"
	// NoDetrending maps cm_future directly.
	NoDetrending Detrending = "no_detrending"
)

// QuantileMapping implements (detrended) quantile mapping following Cannon
// et al. 2015 and Maraun 2016.
//
// Future model values are mapped through the historical model CDF and the
// observational PPF:
//
//	x -> PPF_obs(CDF_cm_hist(x))
//
// With detrending, the projected mean shift between cm_hist and cm_future
// is removed before the mapping and restored afterwards, which keeps the
// climate trend in the mean intact.
//
// The transform is single-shot: it fits one distribution per series over
// the full period. Callers wanting seasonal treatment chunk their series
// externally, or use ECDFM which windows internally.
type QuantileMapping struct {
	model      distributions.Model
	detrending Detrending
	variable   string
}

// NewQuantileMapping creates a quantile-mapping debiaser with the given
// statistical model and detrending mode.
func NewQuantileMapping(model distributions.Model, detrending Detrending) (*QuantileMapping, error) {
	return newQuantileMapping(model, detrending, "unknown")
}

func newQuantileMapping(model distributions.Model, detrending Detrending, variable string) (*QuantileMapping, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	switch detrending {
	case DetrendingAdditive, DetrendingMultiplicative, NoDetrending:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDetrending, detrending)
	}
	return &QuantileMapping{
		model:      model,
		detrending: detrending,
		variable:   variable,
	}, nil
}

// Variable returns the configured variable label.
func (d *QuantileMapping) Variable() string { return d.variable }

// Detrending returns the configured detrending mode.
func (d *QuantileMapping) Detrending() Detrending { return d.detrending }

// standardQM maps x through the historical model CDF and the observational
// PPF.
func (d *QuantileMapping) standardQM(x []float64, paramsHist, paramsObs distributions.Parameters) []float64 {
	return d.model.PPF(d.model.CDF(x, paramsHist), paramsObs)
}

// ApplyLocation corrects cmFuture against obs and cmHist. Time arrays are
// accepted for interface compatibility but not used; the mapping is
// single-shot over the full series.
func (d *QuantileMapping) ApplyLocation(obs, cmHist, cmFuture []float64, times ...[]time.Time) ([]float64, error) {
	if err := checkApplyInput(obs, cmHist, cmFuture, times); err != nil {
		return nil, err
	}
	paramsObs, err := d.model.Fit(obs)
	if err != nil {
		return nil, err
	}
	paramsHist, err := d.model.Fit(cmHist)
	if err != nil {
		return nil, err
	}

	switch d.detrending {
	case DetrendingAdditive:
		meanHist, err := stats.Mean(cmHist)
		if err != nil {
			return nil, err
		}
		meanFuture, err := stats.Mean(cmFuture)
		if err != nil {
			return nil, err
		}
		delta := meanFuture - meanHist
		shifted := make([]float64, len(cmFuture))
		for i, v := range cmFuture {
			shifted[i] = v - delta
		}
		mapped := d.standardQM(shifted, paramsHist, paramsObs)
		for i := range mapped {
			mapped[i] += delta
		}
		return mapped, nil

	case DetrendingMultiplicative:
		meanHist, err := stats.Mean(cmHist)
		if err != nil {
			return nil, err
		}
		meanFuture, err := stats.Mean(cmFuture)
		if err != nil {
			return nil, err
		}
		// A zero historical mean propagates as Inf/NaN, as documented.
		delta := meanFuture / meanHist
		scaled := make([]float64, len(cmFuture))
		for i, v := range cmFuture {
			scaled[i] = v / delta
		}
		mapped := d.standardQM(scaled, paramsHist, paramsObs)
		for i := range mapped {
			mapped[i] *= delta
		}
		return mapped, nil

	case NoDetrending:
		return d.standardQM(cmFuture, paramsHist, paramsObs), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDetrending, d.detrending)
	}
}

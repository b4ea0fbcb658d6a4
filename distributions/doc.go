// Package distributions provides the statistical models the debiasers fit to
// observation and climate-model samples.
//
// A Model exposes exactly three operations: Fit estimates parameters from a
// sample, CDF evaluates cumulative probabilities under fitted parameters,
// and PPF inverts them. Anything satisfying this contract is interchangeable
// from the engine's point of view, including the composite precipitation
// models in the precipitation package.
//
// # Models
//
//   - Normal: maximum-likelihood normal fit (gonum distuv)
//   - Gamma: maximum-likelihood gamma fit with fixed zero location
//   - Beta: moment-based four-parameter (location-scale) beta fit
//   - Empirical: empirical CDF and quantiles of the sample itself
//
// # Usage
//
//	model := distributions.Normal{}
//	params, err := model.Fit(sample)
//	q := model.CDF(sample, params)
//	x := model.PPF(q, params)
//
// Fitted parameters are opaque to callers; each model consumes only
// parameters it produced itself.
package distributions

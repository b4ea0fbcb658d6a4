// Package precipitation provides composite statistical models for daily
// precipitation, which mixes a discrete mass at zero (dry days) with a
// continuous distribution of positive amounts.
//
// All models satisfy the distributions.Model contract and are therefore
// interchangeable with plain parametric distributions inside the debiasers.
//
// # Model types
//
//   - HurdleModel: two-part model; a dry-day probability plus an amounts
//     distribution for wet days. CDF values at zero can be randomized over
//     (0, P0) with a seeded source to break ties reproducibly.
//   - CensoredGammaModel: values below a censoring threshold are treated as
//     censored; fitting imputes them with seeded uniform draws, inversion
//     maps sub-threshold quantiles back to zero.
//   - IgnoreZerosModel: fits the amounts distribution to positive values
//     only and delegates CDF/PPF unchanged.
//
// # Factory
//
// ForModelType builds a model from the standard keywords:
//
//	model, err := precipitation.ForModelType("hurdle", precipitation.DefaultConfig())
package precipitation

// Package debias implements the bias-correction methods.
//
// A Debiaser corrects a future climate-model series (cm_future) so that its
// distribution matches reference observations (obs), using the historical
// climate-model series over the observation period (cm_hist) to estimate
// the model's bias. Two methods are provided:
//
//   - QuantileMapping: detrended quantile mapping (Cannon et al. 2015,
//     Maraun 2016). The future series is mapped through the historical
//     model CDF and the observational PPF, optionally after removing and
//     restoring the projected mean shift additively or multiplicatively.
//   - ECDFM: equidistant CDF matching (Li et al. 2010). Corrects each
//     future value by the quantile-specific discrepancy between
//     observations and the historical model, evaluated at the future
//     value's own quantile rank, which preserves changes in higher moments
//     between the historical and future model periods.
//
// ECDFM runs in running-window mode by default, fitting distributions
// per day-of-year neighborhood to account for seasonality.
//
// # Usage
//
// From per-variable defaults:
//
//	debiaser, err := debias.NewECDFMFromVariable("tas")
//	corrected, err := debiaser.ApplyLocation(obs, cmHist, cmFuture,
//	    timeObs, timeCmHist, timeCmFuture)
//
// Explicit configuration:
//
//	cfg := debias.DefaultECDFMConfig()
//	cfg.RunningWindowStepLength = 1
//	debiaser, err := debias.NewECDFM(distributions.Beta{}, cfg)
//
// All configuration is validated at construction; ApplyLocation is a pure
// function of its inputs and the configuration, holds no state across
// calls, and is safe to run concurrently over independent series as long as
// the injected model tolerates concurrent fits.
package debias

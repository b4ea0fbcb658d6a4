// Package godebias provides statistical bias correction for climate model output.
//
// GoDebias adjusts simulated climate-model time series so their statistical
// distribution matches reference observations, while attempting to preserve
// the projected trend. Typical use is correcting systematic biases in daily
// temperature, precipitation or humidity output against an observed record
// before climate-impact analysis.
//
// # Features
//
//   - Detrended Quantile Mapping (Cannon et al. 2015, Maraun 2016)
//   - Equidistant CDF Matching / ECDFM (Li et al. 2010)
//   - Seasonal running windows over days of year with leap-day handling
//   - Parametric (normal, gamma, beta) and empirical distribution models
//   - Composite precipitation models (hurdle, censored, ignore-zeros)
//   - Per-variable default settings for common CMIP variables
//
// # Quick Start
//
// Correct daily temperature with ECDFM:
//
//	debiaser, _ := debias.NewECDFMFromVariable("tas")
//	corrected, _ := debiaser.ApplyLocation(obs, cmHist, cmFuture)
//
// Correct precipitation with a hurdle model and detrended quantile mapping:
//
//	debiaser, _ := debias.NewQuantileMappingForPrecipitation("hurdle")
//	corrected, _ := debiaser.ApplyLocation(obs, cmHist, cmFuture)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - debias: The QuantileMapping and ECDFM debiasers
//   - distributions: Fit/CDF/PPF statistical models
//   - precipitation: Zero-inflated composite precipitation models
//   - window: Running windows over days of year
//   - timeseries: Series container and calendar utilities
//   - variables: Climate variable descriptors
//
// # References
//
//   - Li, H., Sheffield, J., & Wood, E. F. (2010). Bias correction of monthly
//     precipitation and temperature fields from IPCC AR4 models using
//     equidistant quantile matching
//   - Cannon, A. J., Sobie, S. R., & Murdock, T. Q. (2015). Bias Correction of
//     GCM Precipitation by Quantile Mapping
//   - Maraun, D. (2016). Bias Correcting Climate Change Simulations - a
//     Critical Review
package godebias

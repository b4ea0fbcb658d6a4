package distributions

import "errors"

var (
	// ErrEmptySample indicates a fit was attempted on an empty sample.
	ErrEmptySample = errors.New("distributions: cannot fit an empty sample")
	// ErrDegenerateSample indicates a sample without enough spread to fit.
	ErrDegenerateSample = errors.New("distributions: sample is constant or too small to fit")
	// ErrNonPositiveSample indicates non-positive values passed to a
	// positive-support fit.
	ErrNonPositiveSample = errors.New("distributions: sample contains non-positive values")
)

// Parameters is an opaque fitted-parameter value. It is produced by Fit and
// consumed by CDF and PPF of the same model; the debiasing engine never
// inspects its structure.
type Parameters interface{}

// Model is the fit/cdf/ppf contract every distribution or composite
// statistical model satisfies. CDF and PPF are elementwise over their input
// slice and must be deterministic given the same Parameters, except where a
// model documents a seeded randomization (see precipitation.HurdleModel).
//
// Implementations must tolerate concurrent Fit/CDF/PPF calls on independent
// inputs; they hold no per-call state.
type Model interface {
	// Fit estimates model parameters from a sample.
	Fit(data []float64) (Parameters, error)
	// CDF returns cumulative probabilities in [0,1] for x under params.
	CDF(x []float64, params Parameters) []float64
	// PPF returns the values at cumulative probabilities q under params.
	// q outside the model's invertible range yields the support bounds
	// (possibly infinite); callers clamp with ThresholdCDF first.
	PPF(q []float64, params Parameters) []float64
}

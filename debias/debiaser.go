package debias

import (
	"errors"
	"time"

	"github.com/sartorproj/godebias/timeseries"
)

var (
	// ErrNilModel indicates a debiaser constructed without a statistical
	// model.
	ErrNilModel = errors.New("debias: statistical model must not be nil")
	// ErrInvalidDetrending indicates a detrending mode outside
	// [additive, multiplicative, no_detrending].
	ErrInvalidDetrending = errors.New("debias: invalid detrending mode")
	// ErrInvalidCDFThreshold indicates a CDF threshold outside (0, 0.5).
	ErrInvalidCDFThreshold = errors.New("debias: cdf threshold must lie in (0, 0.5)")
	// ErrInvalidTimeArguments indicates a number of time arrays other than
	// zero or three.
	ErrInvalidTimeArguments = errors.New("debias: either zero or three time arrays must be given")
	// ErrEmptySeries indicates an empty obs, cm_hist or cm_future series.
	ErrEmptySeries = errors.New("debias: obs, cm_hist and cm_future must be non-empty")
)

// Debiaser corrects a future climate-model series against observations and
// the historical model record at a single location.
type Debiaser interface {
	// ApplyLocation returns the corrected cm_future series, with the same
	// length and order as cmFuture. Either zero or three time arrays are
	// given, in the order obs, cm_hist, cm_future; methods that do not use
	// time information ignore them.
	ApplyLocation(obs, cmHist, cmFuture []float64, times ...[]time.Time) ([]float64, error)
	// Variable returns the label of the climate variable being corrected.
	// Metadata only; it has no behavioral effect.
	Variable() string
}

// checkApplyInput validates series and time arguments shared by all
// debiasers.
func checkApplyInput(obs, cmHist, cmFuture []float64, times [][]time.Time) error {
	if len(obs) == 0 || len(cmHist) == 0 || len(cmFuture) == 0 {
		return ErrEmptySeries
	}
	if len(times) != 0 && len(times) != 3 {
		return ErrInvalidTimeArguments
	}
	return nil
}

// gather returns values at the given indices.
func gather(values []float64, indices []int) []float64 {
	out := make([]float64, len(indices))
	for i, idx := range indices {
		out[i] = values[idx]
	}
	return out
}

// ApplySeries runs a debiaser over Series inputs, feeding values and
// timestamps through. The corrected series carries cm_future's timestamps
// and name.
func ApplySeries(d Debiaser, obs, cmHist, cmFuture *timeseries.Series) (*timeseries.Series, error) {
	corrected, err := d.ApplyLocation(obs.Values, cmHist.Values, cmFuture.Values,
		obs.Timestamps, cmHist.Timestamps, cmFuture.Timestamps)
	if err != nil {
		return nil, err
	}
	out, err := timeseries.NewWithTimestamps(cmFuture.Timestamps, corrected)
	if err != nil {
		return nil, err
	}
	out.Name = cmFuture.Name
	return out, nil
}

// resolveTimes fills in missing time arrays with inferred daily timestamps
// and validates lengths. It reports whether any array had to be inferred.
func resolveTimes(obs, cmHist, cmFuture []float64, times [][]time.Time) (obsT, histT, futT []time.Time, inferred bool, err error) {
	lengths := []int{len(obs), len(cmHist), len(cmFuture)}
	for i := range times {
		if times[i] == nil {
			inferred = true
		}
	}
	if len(times) == 0 {
		inferred = true
	}
	resolved := timeseries.InferTimesIfMissing(lengths, times)
	if err := timeseries.ValidateTimeInfo([][]float64{obs, cmHist, cmFuture}, resolved); err != nil {
		return nil, nil, nil, false, err
	}
	return resolved[0], resolved[1], resolved[2], inferred, nil
}

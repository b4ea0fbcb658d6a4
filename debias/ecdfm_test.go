package debias_test

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/godebias/debias"
	"github.com/sartorproj/godebias/distributions"
	"github.com/sartorproj/godebias/timeseries"
	"github.com/sartorproj/godebias/window"
)

// timesFor returns daily timestamps matching the length of values.
func timesFor(values []float64) []time.Time {
	return timeseries.InferTimes(len(values))
}

// seasonalSample draws years of daily values around a sinusoidal seasonal
// cycle.
func seasonalSample(years int, mean, amplitude, sigma float64, seed uint64) []float64 {
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewPCG(seed, 0)}
	out := make([]float64, years*365)
	for i := range out {
		season := amplitude * math.Sin(2*math.Pi*float64(i%365)/365)
		out[i] = mean + season + noise.Rand()
	}
	return out
}

func TestNewECDFM_Errors(t *testing.T) {
	cfg := debias.DefaultECDFMConfig()

	_, err := debias.NewECDFM(nil, cfg)
	assert.ErrorIs(t, err, debias.ErrNilModel)

	bad := cfg
	bad.CDFThreshold = 0
	_, err = debias.NewECDFM(distributions.Normal{}, bad)
	assert.ErrorIs(t, err, debias.ErrInvalidCDFThreshold)

	bad = cfg
	bad.CDFThreshold = 0.5
	_, err = debias.NewECDFM(distributions.Normal{}, bad)
	assert.ErrorIs(t, err, debias.ErrInvalidCDFThreshold)

	bad = cfg
	bad.RunningWindowLength = 0
	_, err = debias.NewECDFM(distributions.Normal{}, bad)
	assert.ErrorIs(t, err, window.ErrInvalidWindowLength)

	bad = cfg
	bad.RunningWindowStepLength = bad.RunningWindowLength + 1
	_, err = debias.NewECDFM(distributions.Normal{}, bad)
	assert.ErrorIs(t, err, window.ErrStepExceedsLength)
}

// TestECDFM_ReducesToQuantileMapping: with cm_hist == cm_future the
// PPF(q, params_hist) term cancels the future value exactly under the
// empirical model, leaving a direct quantile mapping from obs.
func TestECDFM_ReducesToQuantileMapping(t *testing.T) {
	cfg := debias.DefaultECDFMConfig()
	cfg.RunningWindowMode = false
	e, err := debias.NewECDFM(distributions.Empirical{}, cfg)
	require.NoError(t, err)

	qm, err := debias.NewQuantileMapping(distributions.Empirical{}, debias.NoDetrending)
	require.NoError(t, err)

	obs := normalSample(300, 10, 2, 20)
	cm := normalSample(300, 13, 3, 21)

	got, err := e.ApplyLocation(obs, cm, cm)
	require.NoError(t, err)
	want, err := qm.ApplyLocation(obs, cm, cm)
	require.NoError(t, err)

	require.Len(t, got, len(cm))
	for i := range got {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
}

// TestECDFM_IdentityWindowed: a windowed run with obs == cm_hist ==
// cm_future reproduces the input, which exercises the donor/target
// plumbing end to end.
func TestECDFM_IdentityWindowed(t *testing.T) {
	e, err := debias.NewECDFM(distributions.Normal{}, debias.DefaultECDFMConfig())
	require.NoError(t, err)

	sample := seasonalSample(5, 283, 8, 2, 22)
	times := timesFor(sample)

	out, err := e.ApplyLocation(sample, sample, sample, times, times, times)
	require.NoError(t, err)

	require.Len(t, out, len(sample))
	for i := range sample {
		assert.InDelta(t, sample[i], out[i], 1e-6)
	}
}

// TestECDFM_RankPreservation: outside clamped regions the correction is
// monotone in the input.
func TestECDFM_RankPreservation(t *testing.T) {
	cfg := debias.DefaultECDFMConfig()
	cfg.RunningWindowMode = false
	e, err := debias.NewECDFM(distributions.Normal{}, cfg)
	require.NoError(t, err)

	obs := normalSample(400, 10, 2, 23)
	hist := normalSample(400, 12, 2.5, 24)
	future := normalSample(400, 13, 3, 25)

	out, err := e.ApplyLocation(obs, hist, future)
	require.NoError(t, err)
	assert.Equal(t, argsort(future), argsort(out))
}

// TestECDFM_WindowedOutputShape: corrected output always matches
// cm_future's length, whether or not time information was given.
func TestECDFM_WindowedOutputShape(t *testing.T) {
	e, err := debias.NewECDFM(distributions.Normal{}, debias.DefaultECDFMConfig())
	require.NoError(t, err)

	obs := seasonalSample(4, 283, 8, 2, 26)
	hist := seasonalSample(4, 285, 8, 2, 27)
	future := seasonalSample(3, 286, 8, 2, 28)

	// Time-aware run.
	out, err := e.ApplyLocation(obs, hist, future, timesFor(obs), timesFor(hist), timesFor(future))
	require.NoError(t, err)
	require.Len(t, out, len(future))
	for i, v := range out {
		require.False(t, math.IsNaN(v), "NaN at %d", i)
	}

	// Inferred-time run warns but must still produce a full-length result.
	out, err = e.ApplyLocation(obs, hist, future)
	require.NoError(t, err)
	assert.Len(t, out, len(future))
}

// TestECDFM_CorrectsSeasonalBias: a season-dependent model bias is removed
// per window, not just on average.
func TestECDFM_CorrectsSeasonalBias(t *testing.T) {
	e, err := debias.NewECDFM(distributions.Normal{}, debias.DefaultECDFMConfig())
	require.NoError(t, err)

	// The model exaggerates the seasonal cycle: amplitude 12 instead of 8.
	obs := seasonalSample(6, 283, 8, 2, 29)
	hist := seasonalSample(6, 283, 12, 2, 30)
	future := seasonalSample(6, 283, 12, 2, 31)

	out, err := e.ApplyLocation(obs, hist, future)
	require.NoError(t, err)

	// Winter (day ~90 of the sine: peak season) mean should shrink toward
	// the observed amplitude. Compare the peak-season means.
	peakMean := func(values []float64) float64 {
		sum, n := 0.0, 0
		for i, v := range values {
			if d := i % 365; d >= 76 && d <= 106 {
				sum += v
				n++
			}
		}
		return sum / float64(n)
	}
	assert.InDelta(t, peakMean(obs), peakMean(out), 1.0)
	assert.Greater(t, peakMean(future)-peakMean(out), 2.0,
		"peak-season bias should be reduced substantially")
}

func TestECDFM_TimeErrors(t *testing.T) {
	e, err := debias.NewECDFM(distributions.Normal{}, debias.DefaultECDFMConfig())
	require.NoError(t, err)

	obs := seasonalSample(2, 283, 8, 2, 32)
	hist := seasonalSample(2, 283, 8, 2, 33)
	future := seasonalSample(2, 283, 8, 2, 34)

	// One time array instead of three.
	_, err = e.ApplyLocation(obs, hist, future, timesFor(obs))
	assert.ErrorIs(t, err, debias.ErrInvalidTimeArguments)

	// Mismatched time array length.
	short := timesFor(obs[:100])
	_, err = e.ApplyLocation(obs, hist, future, short, timesFor(hist), timesFor(future))
	assert.ErrorIs(t, err, timeseries.ErrTimeLengthMismatch)
}

// TestECDFM_ApplySeries feeds Series inputs through the debiaser.
func TestECDFM_ApplySeries(t *testing.T) {
	e, err := debias.NewECDFM(distributions.Normal{}, debias.DefaultECDFMConfig())
	require.NoError(t, err)

	obs := timeseries.New(seasonalSample(3, 283, 8, 2, 35))
	hist := timeseries.New(seasonalSample(3, 285, 8, 2, 36))
	future := timeseries.New(seasonalSample(3, 285, 8, 2, 37))
	future.Name = "tas"

	corrected, err := debias.ApplySeries(e, obs, hist, future)
	require.NoError(t, err)
	assert.Equal(t, future.Len(), corrected.Len())
	assert.Equal(t, "tas", corrected.Name)
	assert.Equal(t, future.Timestamps, corrected.Timestamps)
}

package debias_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/godebias/debias"
	"github.com/sartorproj/godebias/distributions"
)

// normalSample draws n values from N(mu, sigma) with a fixed seed.
func normalSample(n int, mu, sigma float64, seed uint64) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: rand.NewPCG(seed, 0)}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// gammaSample draws n values from Gamma(alpha, rate) with a fixed seed.
func gammaSample(n int, alpha, rate float64, seed uint64) []float64 {
	dist := distuv.Gamma{Alpha: alpha, Beta: rate, Src: rand.NewPCG(seed, 0)}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// argsort returns the permutation that sorts x ascending.
func argsort(x []float64) []int {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })
	return idx
}

func TestNewQuantileMapping_Errors(t *testing.T) {
	_, err := debias.NewQuantileMapping(nil, debias.NoDetrending)
	assert.ErrorIs(t, err, debias.ErrNilModel)

	_, err = debias.NewQuantileMapping(distributions.Normal{}, "bogus")
	assert.ErrorIs(t, err, debias.ErrInvalidDetrending)
}

// TestQuantileMapping_Identity: mapping a series onto itself with no
// detrending returns it unchanged within numerical tolerance.
func TestQuantileMapping_Identity(t *testing.T) {
	d, err := debias.NewQuantileMapping(distributions.Normal{}, debias.NoDetrending)
	require.NoError(t, err)

	sample := normalSample(500, 10, 2, 1)
	out, err := d.ApplyLocation(sample, sample, sample)
	require.NoError(t, err)

	require.Len(t, out, len(sample))
	for i := range sample {
		assert.InDelta(t, sample[i], out[i], 1e-8)
	}
}

// TestQuantileMapping_AdditiveTrendPreserved: with obs == cm_hist, additive
// detrending passes the projected mean shift through untouched.
func TestQuantileMapping_AdditiveTrendPreserved(t *testing.T) {
	d, err := debias.NewQuantileMapping(distributions.Normal{}, debias.DetrendingAdditive)
	require.NoError(t, err)

	hist := normalSample(500, 283, 3, 2)
	future := make([]float64, len(hist))
	for i, v := range hist {
		future[i] = v + 1.5
	}

	out, err := d.ApplyLocation(hist, hist, future)
	require.NoError(t, err)
	for i := range future {
		assert.InDelta(t, future[i], out[i], 1e-6)
	}
}

// TestQuantileMapping_MultiplicativeTrendPreserved: with obs == cm_hist,
// multiplicative detrending passes the projected scaling through untouched.
func TestQuantileMapping_MultiplicativeTrendPreserved(t *testing.T) {
	d, err := debias.NewQuantileMapping(distributions.Gamma{}, debias.DetrendingMultiplicative)
	require.NoError(t, err)

	hist := gammaSample(500, 2, 0.5, 3)
	future := make([]float64, len(hist))
	for i, v := range hist {
		future[i] = v * 1.3
	}

	out, err := d.ApplyLocation(hist, hist, future)
	require.NoError(t, err)
	for i := range future {
		assert.InDelta(t, future[i], out[i], 1e-6)
	}
}

// TestQuantileMapping_RankPreservation: the mapping is monotone, so the
// sorted order of the output matches the sorted order of the input.
func TestQuantileMapping_RankPreservation(t *testing.T) {
	d, err := debias.NewQuantileMapping(distributions.Normal{}, debias.NoDetrending)
	require.NoError(t, err)

	obs := normalSample(400, 12, 1.5, 4)
	hist := normalSample(400, 14, 2, 5)
	future := normalSample(400, 15, 2.5, 6)

	out, err := d.ApplyLocation(obs, hist, future)
	require.NoError(t, err)
	assert.Equal(t, argsort(future), argsort(out))
}

// TestQuantileMapping_BiasCorrected: the corrected series moves toward the
// observed distribution.
func TestQuantileMapping_BiasCorrected(t *testing.T) {
	d, err := debias.NewQuantileMapping(distributions.Normal{}, debias.NoDetrending)
	require.NoError(t, err)

	obs := normalSample(2000, 10, 2, 7)
	hist := normalSample(2000, 13, 2, 8) // 3 K warm bias
	future := normalSample(2000, 13, 2, 9)

	out, err := d.ApplyLocation(obs, hist, future)
	require.NoError(t, err)

	mean := 0.0
	for _, v := range out {
		mean += v
	}
	mean /= float64(len(out))
	assert.InDelta(t, 10, mean, 0.3)
}

func TestQuantileMapping_InputErrors(t *testing.T) {
	d, err := debias.NewQuantileMapping(distributions.Normal{}, debias.NoDetrending)
	require.NoError(t, err)

	sample := normalSample(10, 0, 1, 10)

	_, err = d.ApplyLocation(nil, sample, sample)
	assert.ErrorIs(t, err, debias.ErrEmptySeries)

	_, err = d.ApplyLocation(sample, sample, sample, timesFor(sample))
	assert.ErrorIs(t, err, debias.ErrInvalidTimeArguments)
}

func TestQuantileMapping_OutputShape(t *testing.T) {
	d, err := debias.NewQuantileMapping(distributions.Normal{}, debias.DetrendingAdditive)
	require.NoError(t, err)

	for _, n := range []int{1, 7, 123} {
		out, err := d.ApplyLocation(
			normalSample(50, 0, 1, 11),
			normalSample(80, 0, 1, 12),
			normalSample(n, 0, 1, 13),
		)
		require.NoError(t, err)
		assert.Len(t, out, n)
	}
}

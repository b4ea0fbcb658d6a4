package precipitation

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sartorproj/godebias/distributions"
)

var (
	// ErrUnknownModelType indicates a model-type keyword outside
	// ["hurdle", "censored", "ignore_zeros"].
	ErrUnknownModelType = errors.New("precipitation: unknown model type")
	// ErrInvalidCensoringThreshold indicates a non-positive censoring
	// threshold.
	ErrInvalidCensoringThreshold = errors.New("precipitation: censoring threshold must be positive")
	// ErrNoPositiveValues indicates a precipitation sample without any wet
	// days, which leaves nothing to fit an amounts distribution to.
	ErrNoPositiveValues = errors.New("precipitation: sample contains no positive values")
)

// Standard precipitation model-type keywords.
const (
	ModelTypeHurdle      = "hurdle"
	ModelTypeCensored    = "censored"
	ModelTypeIgnoreZeros = "ignore_zeros"
)

// Config bundles the options of the standard precipitation models.
type Config struct {
	// AmountsDistribution models positive precipitation amounts. Ignored by
	// the censored model, which is gamma-only.
	AmountsDistribution distributions.Model
	// CensoringThreshold is the trace-precipitation cutoff of the censored
	// model.
	CensoringThreshold float64
	// Randomize toggles the hurdle model's zero-boundary randomization.
	Randomize bool
	// Source seeds any randomization; nil selects a fixed seed.
	Source rand.Source
}

// DefaultConfig returns the standard precipitation model options: gamma
// amounts, 0.1 mm/day censoring, randomized hurdle boundary.
func DefaultConfig() Config {
	return Config{
		AmountsDistribution: distributions.Gamma{},
		CensoringThreshold:  0.1,
		Randomize:           true,
	}
}

// ForModelType builds a precipitation model from one of the standard
// keywords.
func ForModelType(modelType string, cfg Config) (distributions.Model, error) {
	if cfg.AmountsDistribution == nil {
		cfg.AmountsDistribution = distributions.Gamma{}
	}
	switch modelType {
	case ModelTypeHurdle:
		return NewHurdleModel(cfg.AmountsDistribution, cfg.Randomize, cfg.Source), nil
	case ModelTypeCensored:
		return NewCensoredGammaModel(cfg.CensoringThreshold, cfg.Source)
	case ModelTypeIgnoreZeros:
		return NewIgnoreZerosModel(cfg.AmountsDistribution), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModelType, modelType)
	}
}

package debias

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sartorproj/godebias/distributions"
	"github.com/sartorproj/godebias/precipitation"
	"github.com/sartorproj/godebias/variables"
)

// ErrNoDefaultSettings indicates a variable the requested debiaser carries
// no default settings for.
var ErrNoDefaultSettings = errors.New("debias: no default settings for variable")

// qmSetting is one row of the quantile-mapping default-settings table.
type qmSetting struct {
	model      func() distributions.Model
	detrending Detrending
}

// Default settings tables. Read-only process-wide data; models are built
// fresh per debiaser so seeded randomization state is never shared.
var quantileMappingDefaults = map[string]qmSetting{
	"tas": {model: func() distributions.Model { return distributions.Normal{} }, detrending: DetrendingAdditive},
	"pr":  {model: defaultPrecipitationModel, detrending: DetrendingMultiplicative},
}

// ecdfmDefaults lists per-variable models for ECDFM; Li et al. 2010 fit a
// four-parameter beta distribution for temperature.
var ecdfmDefaults = map[string]func() distributions.Model{
	"tas": func() distributions.Model { return distributions.Beta{} },
	"pr":  defaultPrecipitationModel,
}

// ecdfmExperimentalDefaults holds settings that have not been evaluated
// against published results; using them logs a warning.
var ecdfmExperimentalDefaults = map[string]func() distributions.Model{
	"hurs":    func() distributions.Model { return distributions.Beta{} },
	"psl":     func() distributions.Model { return distributions.Beta{} },
	"rlds":    func() distributions.Model { return distributions.Beta{} },
	"sfcWind": func() distributions.Model { return distributions.Gamma{} },
	"tasmin":  func() distributions.Model { return distributions.Beta{} },
	"tasmax":  func() distributions.Model { return distributions.Beta{} },
}

func defaultPrecipitationModel() distributions.Model {
	model, err := precipitation.ForModelType(precipitation.ModelTypeHurdle, precipitation.DefaultConfig())
	if err != nil {
		// DefaultConfig with the hurdle keyword cannot fail validation.
		panic(err)
	}
	return model
}

// NewQuantileMappingFromVariable creates a quantile-mapping debiaser with
// the default settings of the given CMIP variable ("tas" or "pr").
func NewQuantileMappingFromVariable(abbrev string) (*QuantileMapping, error) {
	v, err := variables.FromAbbrev(abbrev)
	if err != nil {
		return nil, err
	}
	setting, ok := quantileMappingDefaults[v.Abbrev]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDefaultSettings, abbrev)
	}
	return newQuantileMapping(setting.model(), setting.detrending, v.Abbrev)
}

// NewQuantileMappingForPrecipitation creates a quantile-mapping debiaser
// for precipitation with the given model type ("hurdle", "censored" or
// "ignore_zeros") and multiplicative detrending.
func NewQuantileMappingForPrecipitation(modelType string) (*QuantileMapping, error) {
	model, err := precipitation.ForModelType(modelType, precipitation.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return newQuantileMapping(model, DetrendingMultiplicative, variables.Pr.Abbrev)
}

// NewECDFMFromVariable creates an ECDFM debiaser with the default settings
// of the given CMIP variable.
func NewECDFMFromVariable(abbrev string) (*ECDFM, error) {
	v, err := variables.FromAbbrev(abbrev)
	if err != nil {
		return nil, err
	}
	modelFn, ok := ecdfmDefaults[v.Abbrev]
	if !ok {
		if modelFn, ok = ecdfmExperimentalDefaults[v.Abbrev]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoDefaultSettings, abbrev)
		}
		slog.Warn("default settings for this variable are experimental and not evaluated against published results",
			"variable", v.Abbrev)
	}
	cfg := DefaultECDFMConfig()
	cfg.Variable = v.Abbrev
	return NewECDFM(modelFn(), cfg)
}

// NewECDFMForPrecipitation creates an ECDFM debiaser for precipitation
// with the given model type ("hurdle", "censored" or "ignore_zeros").
func NewECDFMForPrecipitation(modelType string) (*ECDFM, error) {
	model, err := precipitation.ForModelType(modelType, precipitation.DefaultConfig())
	if err != nil {
		return nil, err
	}
	cfg := DefaultECDFMConfig()
	cfg.Variable = variables.Pr.Abbrev
	return NewECDFM(model, cfg)
}

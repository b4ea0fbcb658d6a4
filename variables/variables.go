package variables

import (
	"errors"
	"fmt"
)

// ErrUnknownVariable indicates a variable abbreviation without a
// descriptor.
var ErrUnknownVariable = errors.New("variables: unknown variable")

// Variable describes a climate variable in the CMIP naming convention.
type Variable struct {
	Name   string // descriptive name
	Abbrev string // CMIP abbreviation, e.g. "tas"
	Unit   string
}

// The standard variables.
var (
	Hurs    = Variable{Name: "daily mean near-surface relative humidity", Abbrev: "hurs", Unit: "%"}
	Pr      = Variable{Name: "daily mean precipitation flux", Abbrev: "pr", Unit: "kg m-2 s-1"}
	Psl     = Variable{Name: "daily mean surface air pressure", Abbrev: "psl", Unit: "Pa"}
	Rlds    = Variable{Name: "daily mean surface downwelling longwave radiation", Abbrev: "rlds", Unit: "W m-2"}
	SfcWind = Variable{Name: "daily mean near-surface wind speed", Abbrev: "sfcWind", Unit: "m s-1"}
	Tas     = Variable{Name: "daily mean near-surface air temperature", Abbrev: "tas", Unit: "K"}
	Tasmin  = Variable{Name: "daily minimum near-surface air temperature", Abbrev: "tasmin", Unit: "K"}
	Tasmax  = Variable{Name: "daily maximum near-surface air temperature", Abbrev: "tasmax", Unit: "K"}
)

var byAbbrev = map[string]Variable{
	"hurs":    Hurs,
	"pr":      Pr,
	"psl":     Psl,
	"rlds":    Rlds,
	"sfcwind": SfcWind,
	"sfcWind": SfcWind,
	"tas":     Tas,
	"tasmin":  Tasmin,
	"tasmax":  Tasmax,
}

// FromAbbrev resolves a CMIP variable abbreviation to its descriptor.
func FromAbbrev(abbrev string) (Variable, error) {
	v, ok := byAbbrev[abbrev]
	if !ok {
		return Variable{}, fmt.Errorf("%w: %q", ErrUnknownVariable, abbrev)
	}
	return v, nil
}

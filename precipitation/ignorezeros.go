package precipitation

import (
	"github.com/sartorproj/godebias/distributions"
)

// IgnoreZerosModel fits its amounts distribution to the positive values of
// a sample only, and delegates CDF and PPF to it unchanged. Dry days thus
// carry no mass of their own; the simplest way to debias precipitation
// amounts when dry-day frequency is handled elsewhere.
type IgnoreZerosModel struct {
	amounts distributions.Model
}

// NewIgnoreZerosModel wraps the given amounts distribution.
func NewIgnoreZerosModel(amounts distributions.Model) *IgnoreZerosModel {
	return &IgnoreZerosModel{amounts: amounts}
}

// Fit fits the amounts distribution to the positive sample values.
func (m *IgnoreZerosModel) Fit(data []float64) (distributions.Parameters, error) {
	if len(data) == 0 {
		return nil, distributions.ErrEmptySample
	}
	wet := make([]float64, 0, len(data))
	for _, v := range data {
		if v > 0 {
			wet = append(wet, v)
		}
	}
	if len(wet) == 0 {
		return nil, ErrNoPositiveValues
	}
	return m.amounts.Fit(wet)
}

// CDF delegates to the amounts distribution.
func (m *IgnoreZerosModel) CDF(x []float64, params distributions.Parameters) []float64 {
	return m.amounts.CDF(x, params)
}

// PPF delegates to the amounts distribution.
func (m *IgnoreZerosModel) PPF(q []float64, params distributions.Parameters) []float64 {
	return m.amounts.PPF(q, params)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

// sampleInputs is the documented turbo call example.
func sampleInputs() Inputs {
	return Inputs{
		Spot:           26,
		Strike:         20,
		Maturity:       0.20,
		Rate:           0.05,
		Volatility:     0.10,
		Barrier:        22,
		RebateMaturity: 0.20,
		DividendYield:  0,
	}
}

func mustParams(t *testing.T, in Inputs) *ValuationParameters {
	t.Helper()
	p, err := NewValuationParameters(in)
	require.NoError(t, err)
	return p
}

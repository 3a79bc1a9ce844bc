package positions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcdannyboy/turbo/models"
)

func sampleInputs() models.Inputs {
	return models.Inputs{
		Spot:           26,
		Strike:         20,
		Maturity:       0.20,
		Rate:           0.05,
		Volatility:     0.10,
		Barrier:        22,
		RebateMaturity: 0.20,
	}
}

func TestSpotDeltaSample(t *testing.T) {
	up, down, err := SpotDelta(sampleInputs(), models.Call, DefaultSpotBump)
	require.NoError(t, err)
	assert.InDelta(t, 1.000059182414, up, 1e-6)
	assert.InDelta(t, -1.001605010590, down, 1e-6)
}

func TestSpotDeltaConverges(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      models.Inputs
		variant models.OptionVariant
		limit   float64
	}{
		{"call", sampleInputs(), models.Call, 1.0002},
		{"put", models.Inputs{Spot: 18, Strike: 20, Maturity: 0.5, Rate: 0.05, Volatility: 0.2, Barrier: 19, RebateMaturity: 0.5}, models.Put, -1.0608},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var prevGap float64
			for i, bump := range []float64{0.1, 0.01, 0.001} {
				up, down, err := SpotDelta(tc.in, tc.variant, bump)
				require.NoError(t, err)

				forward := up / bump
				backward := -down / bump
				gap := forward - backward
				if gap < 0 {
					gap = -gap
				}
				if i > 0 {
					assert.Less(t, gap, prevGap, "bump %v", bump)
				}
				prevGap = gap

				assert.Equal(t, tc.variant.Sign() > 0, forward > 0)
				assert.Equal(t, tc.variant.Sign() > 0, backward > 0)
			}

			up, down, err := SpotDelta(tc.in, tc.variant, 0.001)
			require.NoError(t, err)
			assert.InDelta(t, tc.limit, up/0.001, 1e-3)
			assert.InDelta(t, tc.limit, -down/0.001, 1e-3)
		})
	}
}

func TestSpotDeltaErrors(t *testing.T) {
	_, _, err := SpotDelta(sampleInputs(), models.Call, 0)
	assert.ErrorIs(t, err, models.ErrInvalidParameter)

	_, _, err = SpotDelta(sampleInputs(), models.Call, 26)
	assert.ErrorIs(t, err, models.ErrInvalidParameter)

	in := sampleInputs()
	in.DividendYield = in.Rate
	_, _, err = SpotDelta(in, models.Call, 1)
	assert.ErrorIs(t, err, models.ErrDegenerateDrift)

	_, _, err = SpotDelta(sampleInputs(), models.OptionVariant(9), 1)
	assert.ErrorIs(t, err, models.ErrInvalidOptionVariant)
}

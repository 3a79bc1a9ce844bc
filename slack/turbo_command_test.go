package turboslack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcdannyboy/turbo/models"
)

func TestParseTurboArgs(t *testing.T) {
	variant, in, err := parseTurboArgs("call 26 20 0.2 0.05 0.1 22 0.2")
	require.NoError(t, err)
	assert.Equal(t, models.Call, variant)
	assert.Equal(t, models.Inputs{
		Spot:           26,
		Strike:         20,
		Maturity:       0.2,
		Rate:           0.05,
		Volatility:     0.1,
		Barrier:        22,
		RebateMaturity: 0.2,
	}, in)

	variant, in, err = parseTurboArgs("  PUT 18 20 0.5 0.05 0.2 19 0.5 0.01 ")
	require.NoError(t, err)
	assert.Equal(t, models.Put, variant)
	assert.Equal(t, 0.01, in.DividendYield)
}

func TestParseTurboArgsErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		is   error
	}{
		{"too few", "call 26 20", nil},
		{"too many", "call 1 2 3 4 5 6 7 8 9", nil},
		{"bad variant", "binary 26 20 0.2 0.05 0.1 22 0.2", models.ErrInvalidOptionVariant},
		{"bad number", "call 26 twenty 0.2 0.05 0.1 22 0.2", models.ErrInvalidParameter},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseTurboArgs(tc.text)
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestTurboReply(t *testing.T) {
	h := NewTurboHandler(0)

	reply, err := h.Reply("call 26 20 0.2 0.05 0.1 22 0.2")
	require.NoError(t, err)
	assert.Contains(t, reply, "Price: 6.198943")
	assert.Contains(t, reply, "Vanilla: 6.199003")
	assert.Contains(t, reply, "1.000059 / -1.001605")
	assert.NotContains(t, reply, "Warning")

	reply, err = h.Reply("call 21 20 0.2 0.05 0.1 22 0.2")
	require.NoError(t, err)
	assert.Contains(t, reply, "Warning")

	_, err = h.Reply("call 26 20 0.2 0.05 0 22 0.2")
	assert.ErrorIs(t, err, models.ErrDegenerateVolatility)
}

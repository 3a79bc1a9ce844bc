package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSampleRegression(t *testing.T) {
	p := mustParams(t, sampleInputs())

	vanilla, err := VanillaPrice(p, Call)
	require.NoError(t, err)
	assert.InDelta(t, 6.199003325106, vanilla, tolerance)

	barrier, geo, err := BarrierPrice(p, Call, p.Barrier())
	require.NoError(t, err)
	assert.InDelta(t, 6.198829432821, barrier, tolerance)
	assert.InDelta(t, 22.0/26.0, geo.Ratio, 1e-15)
	assert.InDelta(t, 22.0*22.0/26.0, geo.RatioSquared, 1e-12)
	assert.Equal(t, 1.0, geo.Sign)

	b, err := PriceTurbo(p, Call)
	require.NoError(t, err)
	assert.InDelta(t, 6.198942885296, b.Price, tolerance)
	assert.InDelta(t, 2.205229874724197, b.LookbackStrike, tolerance)
	assert.InDelta(t, 0.8861689187902462, b.LookbackBarrier, tolerance)
	assert.InDelta(t, 8.601003232666774e-05, b.DominantRoot, 1e-9)
	assert.InDelta(t, b.Price-b.Barrier, b.Rebate(), 1e-12)

	price, err := TurboPrice(p, Call)
	require.NoError(t, err)
	assert.Equal(t, b.Price, price)
}

func TestTurboReferenceValues(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      Inputs
		variant OptionVariant
		vanilla float64
		barrier float64
		turbo   float64
		dr      float64
	}{
		{
			name:    "sample put",
			in:      sampleInputs(),
			variant: Put,
			vanilla: 0.000000000089,
			barrier: -0.263798898905,
			turbo:   -0.263740642988,
			dr:      0.000086010032,
		},
		{
			name:    "put below strike",
			in:      Inputs{Spot: 18, Strike: 20, Maturity: 0.5, Rate: 0.05, Volatility: 0.2, Barrier: 19, RebateMaturity: 0.5},
			variant: Put,
			vanilla: 1.976083899649,
			barrier: 1.047834097970,
			turbo:   1.139168344631,
			dr:      0.725562276452,
		},
		{
			name:    "call with dividends",
			in:      Inputs{Spot: 100, Strike: 90, Maturity: 1, Rate: 0.03, Volatility: 0.25, Barrier: 95, RebateMaturity: 0.25, DividendYield: 0.01},
			variant: Call,
			vanilla: 16.234568177022,
			barrier: 6.226824341569,
			turbo:   6.914407521154,
			dr:      0.841315595435,
		},
		{
			name:    "put with dividends",
			in:      Inputs{Spot: 100, Strike: 110, Maturity: 1, Rate: 0.03, Volatility: 0.25, Barrier: 105, RebateMaturity: 0.25, DividendYield: 0.01},
			variant: Put,
			vanilla: 14.564045193282,
			barrier: 5.156125964794,
			turbo:   5.782552115961,
			dr:      0.834192833017,
		},
		{
			name:    "call with immediate rebate",
			in:      Inputs{Spot: 26, Strike: 20, Maturity: 0.2, Rate: 0.05, Volatility: 0.1, Barrier: 22, RebateMaturity: 0},
			variant: Call,
			vanilla: 6.199003325106,
			barrier: 6.198829432821,
			turbo:   6.199001452885,
			dr:      0.000086010032,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := mustParams(t, tc.in)

			vanilla, err := VanillaPrice(p, tc.variant)
			require.NoError(t, err)
			assert.InDelta(t, tc.vanilla, vanilla, tolerance)

			b, err := PriceTurbo(p, tc.variant)
			require.NoError(t, err)
			assert.InDelta(t, tc.barrier, b.Barrier, tolerance)
			assert.InDelta(t, tc.turbo, b.Price, tolerance)
			assert.InDelta(t, tc.dr, b.DominantRoot, tolerance)
		})
	}
}

func TestPutCallParity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		in := Inputs{
			Spot:          1 + 199*rng.Float64(),
			Strike:        1 + 199*rng.Float64(),
			Maturity:      0.01 + 4.99*rng.Float64(),
			Rate:          -0.02 + 0.12*rng.Float64(),
			Volatility:    0.01 + 0.99*rng.Float64(),
			Barrier:       1 + 199*rng.Float64(),
			DividendYield: 0.08 * rng.Float64(),
		}
		p := mustParams(t, in)

		call, err := VanillaPrice(p, Call)
		require.NoError(t, err)
		put, err := VanillaPrice(p, Put)
		require.NoError(t, err)

		parity := call + in.Strike*math.Exp(-in.Rate*in.Maturity) - in.Spot*math.Exp(-in.DividendYield*in.Maturity)
		require.InDelta(t, parity, put, 1e-9, "inputs %+v", in)
	}
}

func TestBarrierNotAboveVanilla(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      Inputs
		variant OptionVariant
	}{
		{"sample call", sampleInputs(), Call},
		{"sample put", sampleInputs(), Put},
		{"deep call", Inputs{Spot: 100, Strike: 90, Maturity: 1, Rate: 0.03, Volatility: 0.25, Barrier: 95, RebateMaturity: 0.25, DividendYield: 0.01}, Call},
		{"deep put", Inputs{Spot: 100, Strike: 110, Maturity: 1, Rate: 0.03, Volatility: 0.25, Barrier: 105, RebateMaturity: 0.25, DividendYield: 0.01}, Put},
		{"short put", Inputs{Spot: 18, Strike: 20, Maturity: 0.5, Rate: 0.05, Volatility: 0.2, Barrier: 19, RebateMaturity: 0.5}, Put},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := mustParams(t, tc.in)

			vanilla, err := VanillaPrice(p, tc.variant)
			require.NoError(t, err)
			barrier, _, err := BarrierPrice(p, tc.variant, tc.in.Barrier)
			require.NoError(t, err)
			assert.LessOrEqual(t, barrier, vanilla+tolerance)
		})
	}
}

func TestTurboCollapsesToBarrierWhenStrikeEqualsBarrier(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   Inputs
	}{
		{"sample", Inputs{Spot: 26, Strike: 22, Maturity: 0.2, Rate: 0.05, Volatility: 0.1, Barrier: 22, RebateMaturity: 0.2}},
		{"at the barrier", Inputs{Spot: 20, Strike: 20, Maturity: 0.5, Rate: 0.05, Volatility: 0.2, Barrier: 20, RebateMaturity: 0.5}},
		{"dividends", Inputs{Spot: 100, Strike: 95, Maturity: 1, Rate: 0.03, Volatility: 0.25, Barrier: 95, RebateMaturity: 0.25, DividendYield: 0.01}},
	} {
		for _, variant := range []OptionVariant{Call, Put} {
			t.Run(tc.name+"/"+variant.String(), func(t *testing.T) {
				p := mustParams(t, tc.in)

				barrier, _, err := BarrierPrice(p, variant, tc.in.Barrier)
				require.NoError(t, err)
				turbo, err := TurboPrice(p, variant)
				require.NoError(t, err)
				assert.Equal(t, barrier, turbo)
			})
		}
	}
}

func TestLookbackPrice(t *testing.T) {
	p := mustParams(t, sampleInputs())

	call, err := LookbackPrice(p, Call, 22, 0, 20, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 2.205229874724197, call, tolerance)

	put, err := LookbackPrice(p, Put, 22, 25, 0, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 2.7538357472421486, put, tolerance)

	t.Run("immediate payoff", func(t *testing.T) {
		v, err := LookbackPrice(p, Call, 22, 0, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 2.0, v)

		v, err = LookbackPrice(p, Put, 22, 25, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 3.0, v)
	})

	t.Run("zero drift", func(t *testing.T) {
		in := sampleInputs()
		in.DividendYield = in.Rate
		zero := mustParams(t, in)
		assert.Equal(t, 0.0, zero.Drift())

		_, err := LookbackPrice(zero, Call, 22, 0, 20, 0.2)
		assert.ErrorIs(t, err, ErrDegenerateDrift)
		_, err = TurboPrice(zero, Put)
		assert.ErrorIs(t, err, ErrDegenerateDrift)
	})

	t.Run("invalid levels", func(t *testing.T) {
		_, err := LookbackPrice(p, Call, 22, 0, 0, 0.2)
		assert.ErrorIs(t, err, ErrInvalidParameter)
		_, err = LookbackPrice(p, Put, -1, 25, 0, 0.2)
		assert.ErrorIs(t, err, ErrInvalidParameter)
		_, err = LookbackPrice(p, Call, 22, 0, 20, -0.5)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestDominantRootFactor(t *testing.T) {
	p := mustParams(t, sampleInputs())

	dr, err := DominantRootFactor(p, p.Barrier()/p.Spot())
	require.NoError(t, err)
	assert.InDelta(t, 8.601003232666774e-05, dr, 1e-12)

	_, err = DominantRootFactor(p, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	t.Run("spot on the barrier", func(t *testing.T) {
		at := mustParams(t, Inputs{Spot: 20, Strike: 20, Maturity: 0.5, Rate: 0.05, Volatility: 0.2, Barrier: 20, RebateMaturity: 0.5})
		dr, err := DominantRootFactor(at, 1)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, dr, 1e-12)
	})

	t.Run("geometry of an explicit barrier", func(t *testing.T) {
		_, geo, err := BarrierPrice(p, Put, 30)
		require.NoError(t, err)
		require.Equal(t, 30.0, geo.Level)

		dr, err := DominantRootFactor(p, geo.Ratio)
		require.NoError(t, err)
		assert.InDelta(t, 0.0025507118213125594, dr, 1e-9)
	})
}

func TestInvalidVariant(t *testing.T) {
	p := mustParams(t, sampleInputs())
	bogus := OptionVariant(0)

	_, err := VanillaPrice(p, bogus)
	assert.ErrorIs(t, err, ErrInvalidOptionVariant)
	_, err = LookbackPrice(p, bogus, 22, 0, 20, 0.2)
	assert.ErrorIs(t, err, ErrInvalidOptionVariant)
	_, _, err = BarrierPrice(p, bogus, 22)
	assert.ErrorIs(t, err, ErrInvalidOptionVariant)
	_, err = TurboPrice(p, OptionVariant(3))
	assert.ErrorIs(t, err, ErrInvalidOptionVariant)
}

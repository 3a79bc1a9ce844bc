package models

import (
	"fmt"
	"math"
)

// BarrierGeometry holds the per-call quantities of a barrier valuation. It is returned to the
// caller, who threads Ratio into DominantRootFactor.
type BarrierGeometry struct {
	Level        float64 // H
	Ratio        float64 // H / S0
	RatioSquared float64 // H^2 / S0
	Sign         float64 // +1 call, -1 put
}

func NewBarrierGeometry(p *ValuationParameters, variant OptionVariant, h float64) (BarrierGeometry, error) {
	if err := checkVariant(variant); err != nil {
		return BarrierGeometry{}, err
	}
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return BarrierGeometry{}, fmt.Errorf("%w: barrier must be positive, got %v", ErrInvalidParameter, h)
	}
	return BarrierGeometry{
		Level:        h,
		Ratio:        h / p.in.Spot,
		RatioSquared: h * h / p.in.Spot,
		Sign:         variant.Sign(),
	}, nil
}

// BarrierPrice is the reflection-principle knock-out value at barrier h, including the rebate
// term on (h - K).
func BarrierPrice(p *ValuationParameters, variant OptionVariant, h float64) (float64, BarrierGeometry, error) {
	geo, err := NewBarrierGeometry(p, variant, h)
	if err != nil {
		return 0, BarrierGeometry{}, err
	}

	S, K, T := p.in.Spot, p.in.Strike, p.in.Maturity
	r, q := p.in.Rate, p.in.DividendYield
	v := geo.Sign

	dSpot, d1Spot, err := p.distPair(S, h, T)
	if err != nil {
		return 0, geo, fmt.Errorf("barrier: %w", err)
	}
	dRefl, d1Refl, err := p.distPair(geo.RatioSquared, h, T)
	if err != nil {
		return 0, geo, fmt.Errorf("barrier: %w", err)
	}

	growth := math.Exp(-q * T)
	discount := math.Exp(-r * T)
	reflection := math.Pow(geo.Ratio, p.driftMinus)

	value := v*S*growth*p.N(v*d1Spot) - v*h*discount*p.N(v*dSpot) -
		v*reflection*(geo.RatioSquared*growth*p.N(v*d1Refl)-h*discount*p.N(v*dRefl)) +
		v*(h-K)*discount*(p.N(v*dSpot)-reflection*p.N(v*dRefl))

	price, err := checkFinite("barrier", value)
	return price, geo, err
}

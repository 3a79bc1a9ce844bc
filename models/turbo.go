package models

import "fmt"

// TurboBreakdown exposes every leg of a turbo warrant valuation.
type TurboBreakdown struct {
	Variant         OptionVariant `json:"variant"`
	Barrier         float64       `json:"barrier"`
	LookbackStrike  float64       `json:"lookback_strike"`
	LookbackBarrier float64       `json:"lookback_barrier"`
	DominantRoot    float64       `json:"dominant_root"`
	Price           float64       `json:"price"`
}

// Rebate is the lookback differential scaled by the dominant root factor.
func (b TurboBreakdown) Rebate() float64 {
	return (b.LookbackStrike - b.LookbackBarrier) * b.DominantRoot
}

func TurboPrice(p *ValuationParameters, variant OptionVariant) (float64, error) {
	b, err := PriceTurbo(p, variant)
	if err != nil {
		return 0, err
	}
	return b.Price, nil
}

// PriceTurbo composes the barrier leg with the DR-weighted lookback differential (Domingue
// decomposition). The call legs read the strike and the barrier as running minimum, the put
// legs as running maximum; the level argument is the barrier in both legs.
func PriceTurbo(p *ValuationParameters, variant OptionVariant) (TurboBreakdown, error) {
	if err := checkVariant(variant); err != nil {
		return TurboBreakdown{}, err
	}

	H, K, T0 := p.in.Barrier, p.in.Strike, p.in.RebateMaturity

	barrier, geo, err := BarrierPrice(p, variant, H)
	if err != nil {
		return TurboBreakdown{}, err
	}

	var strikeLeg, barrierLeg float64
	switch variant {
	case Call:
		strikeLeg, err = LookbackPrice(p, Call, H, 0, K, T0)
		if err != nil {
			return TurboBreakdown{}, fmt.Errorf("turbo strike leg: %w", err)
		}
		barrierLeg, err = LookbackPrice(p, Call, H, 0, H, T0)
	case Put:
		strikeLeg, err = LookbackPrice(p, Put, H, K, 0, T0)
		if err != nil {
			return TurboBreakdown{}, fmt.Errorf("turbo strike leg: %w", err)
		}
		barrierLeg, err = LookbackPrice(p, Put, H, H, 0, T0)
	}
	if err != nil {
		return TurboBreakdown{}, fmt.Errorf("turbo barrier leg: %w", err)
	}

	dr, err := DominantRootFactor(p, geo.Ratio)
	if err != nil {
		return TurboBreakdown{}, err
	}

	b := TurboBreakdown{
		Variant:         variant,
		Barrier:         barrier,
		LookbackStrike:  strikeLeg,
		LookbackBarrier: barrierLeg,
		DominantRoot:    dr,
	}
	price, err := checkFinite("turbo", barrier+b.Rebate())
	if err != nil {
		return TurboBreakdown{}, err
	}
	b.Price = price
	return b, nil
}

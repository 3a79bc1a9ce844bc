package models

import (
	"fmt"
	"math"
)

// LookbackPrice values a floating-strike lookback on level st over horizon t0. The reference
// extremum is runningMin for a call and runningMax for a put; the other one is ignored.
// With t0 = 0 the option is worth its immediate payoff w(st - ref).
func LookbackPrice(p *ValuationParameters, variant OptionVariant, st, runningMax, runningMin, t0 float64) (float64, error) {
	if err := checkVariant(variant); err != nil {
		return 0, err
	}
	G := p.drift
	if G == 0 {
		return 0, fmt.Errorf("lookback: %w", ErrDegenerateDrift)
	}
	if t0 < 0 {
		return 0, fmt.Errorf("%w: lookback horizon must be non-negative, got %v", ErrInvalidParameter, t0)
	}

	w := variant.Sign()
	ref := runningMin
	if variant == Put {
		ref = runningMax
	}
	if st <= 0 || ref <= 0 {
		return 0, fmt.Errorf("%w: lookback levels must be positive, got level=%v extremum=%v", ErrInvalidParameter, st, ref)
	}

	if t0 == 0 {
		return w * (st - ref), nil
	}

	d, d1, err := p.distPair(st, ref, t0)
	if err != nil {
		return 0, err
	}
	dRev, err := p.Dist(ref, st, t0)
	if err != nil {
		return 0, err
	}

	r, q := p.in.Rate, p.in.DividendYield
	growth := math.Exp(-q * t0)
	discount := math.Exp(-r * t0)

	value := w*st*growth*p.N(w*d1) -
		w*ref*discount*p.N(w*d) +
		(st/G)*(w*discount*math.Pow(st/ref, -G)*p.N(w*dRev)-w*growth*p.N(-w*d1))

	return checkFinite("lookback", value)
}

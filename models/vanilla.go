package models

import "math"

// VanillaPrice returns the dividend-adjusted Black-Scholes-Merton price. The put is derived
// from the call through put-call parity.
func VanillaPrice(p *ValuationParameters, variant OptionVariant) (float64, error) {
	if err := checkVariant(variant); err != nil {
		return 0, err
	}

	S, K, T := p.in.Spot, p.in.Strike, p.in.Maturity
	r, q, sigma := p.in.Rate, p.in.DividendYield, p.in.Volatility

	sqrtT := math.Sqrt(T)
	d1 := (math.Log(S/K) + (r-q+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	discountedSpot := S * math.Exp(-q*T)
	discountedStrike := K * math.Exp(-r*T)

	call := discountedSpot*p.N(d1) - discountedStrike*p.N(d2)
	if variant == Call {
		return checkFinite("vanilla call", call)
	}
	return checkFinite("vanilla put", call+discountedStrike-discountedSpot)
}

package models

import (
	"fmt"
	"math"
)

// Dist is the generalized d2: [ln(x/y) + (r - q - sigma^2/2)t] / (sigma sqrt(t)).
func (p *ValuationParameters) Dist(x, y, t float64) (float64, error) {
	if t <= 0 {
		return 0, fmt.Errorf("%w: horizon must be positive, got %v", ErrDegenerateMaturity, t)
	}
	if x <= 0 || y <= 0 {
		return 0, fmt.Errorf("%w: distance levels must be positive, got x=%v y=%v", ErrInvalidParameter, x, y)
	}
	sigma := p.in.Volatility
	if sigma == 0 {
		return 0, ErrDegenerateVolatility
	}
	mu := p.in.Rate - p.in.DividendYield - 0.5*sigma*sigma
	return (math.Log(x/y) + mu*t) / (sigma * math.Sqrt(t)), nil
}

// Dist1 is the generalized d1, Dist shifted by sigma sqrt(t).
func (p *ValuationParameters) Dist1(x, y, t float64) (float64, error) {
	d, err := p.Dist(x, y, t)
	if err != nil {
		return 0, err
	}
	return d + p.in.Volatility*math.Sqrt(t), nil
}

// distPair evaluates Dist and Dist1 for the same arguments.
func (p *ValuationParameters) distPair(x, y, t float64) (float64, float64, error) {
	d, err := p.Dist(x, y, t)
	if err != nil {
		return 0, 0, err
	}
	return d, d + p.in.Volatility*math.Sqrt(t), nil
}

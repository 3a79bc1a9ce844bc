package models

import (
	"fmt"
	"math"
)

// DominantRootFactor weights the rebate/lookback differential by the contribution of the two
// characteristic roots of the barrier-crossing problem. ratio must be H/S0 for the barrier
// being priced; the barrier stored on p is not consulted.
func DominantRootFactor(p *ValuationParameters, ratio float64) (float64, error) {
	sigma := p.in.Volatility
	if sigma == 0 {
		return 0, fmt.Errorf("dominant root: %w", ErrDegenerateVolatility)
	}
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, fmt.Errorf("%w: barrier ratio must be positive, got %v", ErrInvalidParameter, ratio)
	}

	r, q, T := p.in.Rate, p.in.DividendYield, p.in.Maturity
	variance := sigma * sigma
	mu := r - q - 0.5*variance

	// mu^2 + 2r sigma^2 >= (r + sigma^2/2)^2 whenever q >= 0.
	beta := math.Sqrt(mu*mu + 2*r*variance)

	aPlus := (mu + beta) / variance
	aMinus := (mu - beta) / variance

	sigmaSqrtT := sigma * math.Sqrt(T)
	logRatio := math.Log(ratio)
	jPlus := (logRatio + beta*T) / sigmaSqrtT
	jMinus := (logRatio - beta*T) / sigmaSqrtT

	// ln(S0/H) = -ln(H/S0)
	o := sign(-logRatio)

	dr := math.Pow(ratio, aPlus)*p.N(o*jPlus) + math.Pow(ratio, aMinus)*p.N(o*jMinus)
	return checkFinite("dominant root", dr)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

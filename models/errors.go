package models

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrInvalidOptionVariant = errors.New("invalid option variant")
	ErrDegenerateDrift      = errors.New("degenerate drift: rate equals dividend yield")
	ErrDegenerateVolatility = errors.New("degenerate volatility")
	ErrDegenerateMaturity   = errors.New("degenerate maturity")
	ErrNonFinite            = errors.New("non-finite result")
)

// checkFinite rejects NaN and ±Inf.
func checkFinite(name string, x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%s: %w (%v)", name, ErrNonFinite, x)
	}
	return x, nil
}

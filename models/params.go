package models

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// CDF is the cumulative distribution function of a standard normal variable.
type CDF func(float64) float64

// Inputs is the raw, serializable parameter set of a single valuation.
type Inputs struct {
	Spot           float64 `yaml:"spot" json:"spot"`
	Strike         float64 `yaml:"strike" json:"strike"`
	Maturity       float64 `yaml:"maturity" json:"maturity"`
	Rate           float64 `yaml:"rate" json:"rate"`
	Volatility     float64 `yaml:"volatility" json:"volatility"`
	Barrier        float64 `yaml:"barrier" json:"barrier"`
	RebateMaturity float64 `yaml:"rebate_maturity" json:"rebate_maturity"`
	DividendYield  float64 `yaml:"dividend_yield" json:"dividend_yield"`
}

// ValuationParameters is the validated, immutable model state shared by every kernel.
// G = 2(r-q)/sigma^2 and its neighbours g = G-1, gg = G+1 are fixed at construction.
type ValuationParameters struct {
	in  Inputs
	cdf CDF

	drift      float64
	driftMinus float64
	driftPlus  float64
}

type Option func(*ValuationParameters)

// WithCDF replaces the default gonum standard normal CDF.
func WithCDF(cdf CDF) Option {
	return func(p *ValuationParameters) {
		if cdf != nil {
			p.cdf = cdf
		}
	}
}

func NewValuationParameters(in Inputs, opts ...Option) (*ValuationParameters, error) {
	if err := validateInputs(in); err != nil {
		return nil, err
	}

	p := &ValuationParameters{
		in:  in,
		cdf: distuv.UnitNormal.CDF,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.drift = 2 * (in.Rate - in.DividendYield) / (in.Volatility * in.Volatility)
	p.driftMinus = p.drift - 1
	p.driftPlus = p.drift + 1
	return p, nil
}

// WithSpot returns a fresh parameter set that differs only in spot. The receiver is untouched.
func (p *ValuationParameters) WithSpot(spot float64) (*ValuationParameters, error) {
	in := p.in
	in.Spot = spot
	return NewValuationParameters(in, WithCDF(p.cdf))
}

func validateInputs(in Inputs) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"spot", in.Spot},
		{"strike", in.Strike},
		{"maturity", in.Maturity},
		{"rate", in.Rate},
		{"volatility", in.Volatility},
		{"barrier", in.Barrier},
		{"rebate_maturity", in.RebateMaturity},
		{"dividend_yield", in.DividendYield},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, f.name, f.value)
		}
	}

	switch {
	case in.Spot <= 0:
		return fmt.Errorf("%w: spot must be positive, got %v", ErrInvalidParameter, in.Spot)
	case in.Strike <= 0:
		return fmt.Errorf("%w: strike must be positive, got %v", ErrInvalidParameter, in.Strike)
	case in.Barrier <= 0:
		return fmt.Errorf("%w: barrier must be positive, got %v", ErrInvalidParameter, in.Barrier)
	case in.Volatility == 0:
		return fmt.Errorf("%w: %w: volatility is zero", ErrInvalidParameter, ErrDegenerateVolatility)
	case in.Volatility < 0:
		return fmt.Errorf("%w: volatility must be positive, got %v", ErrInvalidParameter, in.Volatility)
	case in.Maturity == 0:
		return fmt.Errorf("%w: %w: maturity is zero", ErrInvalidParameter, ErrDegenerateMaturity)
	case in.Maturity < 0:
		return fmt.Errorf("%w: maturity must be positive, got %v", ErrInvalidParameter, in.Maturity)
	case in.RebateMaturity < 0:
		return fmt.Errorf("%w: rebate_maturity must be non-negative, got %v", ErrInvalidParameter, in.RebateMaturity)
	case in.DividendYield < 0:
		return fmt.Errorf("%w: dividend_yield must be non-negative, got %v", ErrInvalidParameter, in.DividendYield)
	}
	return nil
}

func (p *ValuationParameters) Inputs() Inputs { return p.in }
func (p *ValuationParameters) Spot() float64 { return p.in.Spot }
func (p *ValuationParameters) Strike() float64 { return p.in.Strike }
func (p *ValuationParameters) Maturity() float64 { return p.in.Maturity }
func (p *ValuationParameters) Rate() float64 { return p.in.Rate }
func (p *ValuationParameters) Volatility() float64 { return p.in.Volatility }
func (p *ValuationParameters) Barrier() float64 { return p.in.Barrier }
func (p *ValuationParameters) RebateMaturity() float64 { return p.in.RebateMaturity }
func (p *ValuationParameters) DividendYield() float64 { return p.in.DividendYield }
func (p *ValuationParameters) Drift() float64 { return p.drift }
func (p *ValuationParameters) DriftMinusOne() float64 { return p.driftMinus }
func (p *ValuationParameters) DriftPlusOne() float64 { return p.driftPlus }
func (p *ValuationParameters) N(x float64) float64 { return p.cdf(x) }

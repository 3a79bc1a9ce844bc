package positions

import (
	"fmt"

	"github.com/bcdannyboy/turbo/models"
)

// DefaultSpotBump is the absolute spot shift used by SpotDelta when none is configured.
const DefaultSpotBump = 1.0

// SpotDelta returns the one-step forward and backward differences of the turbo price in spot:
//
//	deltaUp   = Turbo(S0+bump) - Turbo(S0)
//	deltaDown = Turbo(S0-bump) - Turbo(S0)
//
// Each of the three prices is computed from a freshly built parameter set.
func SpotDelta(in models.Inputs, variant models.OptionVariant, bump float64, opts ...models.Option) (float64, float64, error) {
	if bump <= 0 {
		return 0, 0, fmt.Errorf("%w: spot bump must be positive, got %v", models.ErrInvalidParameter, bump)
	}

	base, err := turboAt(in, in.Spot, variant, opts)
	if err != nil {
		return 0, 0, err
	}
	up, err := turboAt(in, in.Spot+bump, variant, opts)
	if err != nil {
		return 0, 0, fmt.Errorf("bumped up: %w", err)
	}
	down, err := turboAt(in, in.Spot-bump, variant, opts)
	if err != nil {
		return 0, 0, fmt.Errorf("bumped down: %w", err)
	}

	return up - base, down - base, nil
}

func turboAt(in models.Inputs, spot float64, variant models.OptionVariant, opts []models.Option) (float64, error) {
	in.Spot = spot
	p, err := models.NewValuationParameters(in, opts...)
	if err != nil {
		return 0, err
	}
	return models.TurboPrice(p, variant)
}

package positions

import (
	"fmt"

	"github.com/bcdannyboy/turbo/models"
)

// CalculateTurboMetrics prices the warrant, its vanilla counterpart and the spot deltas for one
// parameter set.
func CalculateTurboMetrics(in models.Inputs, variant models.OptionVariant, bump float64, opts ...models.Option) (TurboResult, error) {
	p, err := models.NewValuationParameters(in, opts...)
	if err != nil {
		return TurboResult{}, err
	}

	breakdown, err := models.PriceTurbo(p, variant)
	if err != nil {
		return TurboResult{}, fmt.Errorf("turbo %s: %w", variant, err)
	}

	vanilla, err := models.VanillaPrice(p, variant)
	if err != nil {
		return TurboResult{}, fmt.Errorf("vanilla %s: %w", variant, err)
	}

	deltaUp, deltaDown, err := SpotDelta(in, variant, bump, opts...)
	if err != nil {
		return TurboResult{}, fmt.Errorf("delta %s: %w", variant, err)
	}

	return TurboResult{
		Variant:         variant,
		Inputs:          in,
		Price:           breakdown.Price,
		Barrier:         breakdown.Barrier,
		LookbackStrike:  breakdown.LookbackStrike,
		LookbackBarrier: breakdown.LookbackBarrier,
		DominantRoot:    breakdown.DominantRoot,
		Rebate:          breakdown.Rebate(),
		Vanilla:         vanilla,
		DeltaUp:         deltaUp,
		DeltaDown:       deltaDown,
		SpotBump:        bump,
		IntrinsicValue:  calculateIntrinsicValue(variant, in.Spot, in.Strike),
		BarrierBreached: barrierBreached(variant, in.Spot, in.Barrier),
	}, nil
}

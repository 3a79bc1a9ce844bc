package positions

import "github.com/bcdannyboy/turbo/models"

type TurboResult struct {
	Variant         models.OptionVariant `json:"variant"`
	Inputs          models.Inputs        `json:"inputs"`
	Price           float64              `json:"price"`
	Barrier         float64              `json:"barrier_leg"`
	LookbackStrike  float64              `json:"lookback_strike_leg"`
	LookbackBarrier float64              `json:"lookback_barrier_leg"`
	DominantRoot    float64              `json:"dominant_root"`
	Rebate          float64              `json:"rebate"`
	Vanilla         float64              `json:"vanilla"`
	DeltaUp         float64              `json:"delta_up"`
	DeltaDown       float64              `json:"delta_down"`
	SpotBump        float64              `json:"spot_bump"`
	IntrinsicValue  float64              `json:"intrinsic_value"`
	BarrierBreached bool                 `json:"barrier_breached"`
}

// Delta is the central difference implied by the one-sided bumps.
func (r TurboResult) Delta() float64 {
	if r.SpotBump == 0 {
		return 0
	}
	return (r.DeltaUp - r.DeltaDown) / (2 * r.SpotBump)
}

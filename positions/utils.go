package positions

import (
	"math"

	"github.com/bcdannyboy/turbo/models"
)

func calculateIntrinsicValue(variant models.OptionVariant, spot, strike float64) float64 {
	return math.Max(0, variant.Sign()*(spot-strike))
}

// barrierBreached reports whether spot already sits on the knock-out side of the barrier:
// at or below it for a call, at or above it for a put.
func barrierBreached(variant models.OptionVariant, spot, barrier float64) bool {
	if variant == models.Put {
		return spot >= barrier
	}
	return spot <= barrier
}

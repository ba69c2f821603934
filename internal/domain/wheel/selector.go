package wheel

import (
	"prize-wheel/internal/domain/prize"
)

// LoseRate reserves the bottom slice of the draw space for an unconditional
// lose, independent of stock and weights.
const LoseRate = 0.05

// Pick selects a prize from the eligible set by normalized weight, or nil
// for a lose. draw must be uniform in [0,1). Pure function: given the same
// eligible set and draw it always returns the same result.
func Pick(eligible []*prize.Prize, draw float64) *prize.Prize {
	if len(eligible) == 0 {
		return nil
	}

	if draw < LoseRate {
		return nil
	}

	total := 0.0
	for _, p := range eligible {
		total += p.Weight()
	}
	if total <= 0 {
		return nil
	}

	// Rescale the winning slice back to [0,1)
	scaled := (draw - LoseRate) / (1 - LoseRate)

	acc := 0.0
	for _, p := range eligible {
		acc += p.Weight() / total
		if scaled <= acc {
			return p
		}
	}

	// Floating-point tails land on the last item rather than erroring
	return eligible[len(eligible)-1]
}

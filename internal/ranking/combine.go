package ranking

import (
	"math"

	"github.com/getbestai/getbestai/internal/prefs"
)

// PositionWeights is the fixed weight table applied to the priority order by
// position: first, second, third. It is a constant table, never derived from
// user input, and the combiner does not assume the entries sum to 1.
type PositionWeights [3]float64

// DefaultPositionWeights gives half the influence to the top priority.
var DefaultPositionWeights = PositionWeights{0.50, 0.33, 0.17}

// For maps the positional table onto a validated priority order, yielding a
// weight per axis.
func (w PositionWeights) For(order prefs.PriorityOrder) map[prefs.Priority]float64 {
	weights := make(map[prefs.Priority]float64, 3)
	for i, p := range order {
		weights[p] = w[i]
	}
	return weights
}

// matchScore combines the three sub-scores into the final 0–100 match score.
func matchScore(taskQ, speed, budget int, weights map[prefs.Priority]float64) int {
	raw := float64(taskQ)*weights[prefs.PriorityQuality] +
		float64(speed)*weights[prefs.PrioritySpeed] +
		float64(budget)*weights[prefs.PriorityBudget]
	return clamp(int(math.Round(raw)))
}

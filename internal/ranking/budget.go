package ranking

import "math"

// budgetScores converts blended prices into inverted 0–100 scores relative
// to the whole candidate set: cheapest scores 100, priciest 0. Prices are
// log-compressed first so near-free models don't all pin the ceiling while
// mid-tier models get unfairly squeezed together.
func budgetScores(metrics []Metrics) []int {
	scores := make([]int, len(metrics))
	if len(metrics) == 0 {
		return scores
	}

	logPrices := make([]float64, len(metrics))
	minLog, maxLog := math.Inf(1), math.Inf(-1)
	for i, m := range metrics {
		lp := math.Log1p(m.PricePerKTokens * 1000)
		logPrices[i] = lp
		minLog = math.Min(minLog, lp)
		maxLog = math.Max(maxLog, lp)
	}

	// Identical prices across the set: no discrimination possible, treat as
	// tied-best rather than dividing by zero.
	if maxLog == minLog {
		for i := range scores {
			scores[i] = 100
		}
		return scores
	}

	for i, lp := range logPrices {
		scores[i] = clamp(int(math.Round((1 - (lp-minLog)/(maxLog-minLog)) * 100)))
	}
	return scores
}

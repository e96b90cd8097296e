package ranking

import (
	"math"

	"github.com/getbestai/getbestai/internal/catalog"
)

// defaultThroughputScore is used when a model reports no throughput, so a
// missing metric does not zero the model out.
const defaultThroughputScore = 50

// Metrics holds one model's normalized inputs to the scorers. Quality,
// Coding, and Math stay nil when absent: substitution happens in the
// task-quality selector so callers can distinguish absent from zero.
type Metrics struct {
	Quality *float64
	Coding  *float64
	Math    *float64

	// ThroughputScore is 0–100, derived from output tokens/sec.
	ThroughputScore int

	// TTFTSeconds is the resolved time-to-first-token, preferring the
	// time-to-first-answer-token figure when both exist. Nil when unknown.
	TTFTSeconds *float64

	// PricePerKTokens is the blended $ price per 1K tokens.
	PricePerKTokens float64
}

// Normalize converts a raw catalog model into scoring metrics, applying the
// fallback chains for absent fields.
func Normalize(m catalog.Model) Metrics {
	return Metrics{
		Quality:         m.IntelligenceIndex,
		Coding:          m.CodingIndex,
		Math:            m.MathIndex,
		ThroughputScore: throughputScore(m.OutputTokensPerSecond),
		TTFTSeconds:     resolveTTFT(m),
		PricePerKTokens: pricePerKTokens(m),
	}
}

func throughputScore(tps *float64) int {
	if tps == nil {
		return defaultThroughputScore
	}
	return clamp(int(math.Round(*tps / 2)))
}

func resolveTTFT(m catalog.Model) *float64 {
	if m.TimeToFirstAnswerTokenSeconds != nil {
		return m.TimeToFirstAnswerTokenSeconds
	}
	return m.TimeToFirstTokenSeconds
}

// pricePerKTokens prefers the upstream pre-blended figure; otherwise it
// blends input and output prices 3:1, the typical prompt/completion ratio.
func pricePerKTokens(m catalog.Model) float64 {
	if m.BlendedPricePer1M != nil {
		return *m.BlendedPricePer1M / 1000
	}
	var input, output float64
	if m.PricePer1MInputTokens != nil {
		input = *m.PricePer1MInputTokens
	}
	if m.PricePer1MOutputTokens != nil {
		output = *m.PricePer1MOutputTokens
	}
	return (input*3 + output*1) / 4 / 1000
}

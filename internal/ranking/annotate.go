package ranking

import (
	"math"
	"time"
)

const (
	// fastestTTFTCeiling is the "genuinely fast" latency guard for the
	// fastest badge.
	fastestTTFTCeiling = 3.0
	// fastestScoreProxy replaces the latency guard when no TTFT is known.
	fastestScoreProxy = 85
	// valueEpsilon keeps free models from dividing by zero.
	valueEpsilon = 0.01
)

// annotate adds display-only badges and value scores to a ranked result
// set. Feature badges and value labels are independent slots: a model can
// carry both.
func annotate(scored []ScoredModel) {
	if len(scored) == 0 {
		return
	}

	annotateValue(scored)

	newest := newestIndex(scored)
	fastest := fastestIndex(scored)
	maxQuality := 0
	for _, s := range scored {
		if s.TaskQualityScore > maxQuality {
			maxQuality = s.TaskQualityScore
		}
	}

	// One feature badge per model, fixed precedence.
	for i := range scored {
		switch {
		case i == newest:
			scored[i].FeatureBadge = BadgeNewest
		case i == fastest:
			scored[i].FeatureBadge = BadgeFastest
		case scored[i].TaskQualityScore == maxQuality:
			scored[i].FeatureBadge = BadgeHighestQuality
		}
		scored[i].SpecializationTags = specializationTags(scored[i])
	}
}

// annotateValue computes quality-per-price, normalized linearly across the
// set, and assigns tier labels.
func annotateValue(scored []ScoredModel) {
	raws := make([]float64, len(scored))
	minRaw, maxRaw := math.Inf(1), math.Inf(-1)
	for i, s := range scored {
		var price float64
		if s.PricePer1MInputTokens != nil {
			price = *s.PricePer1MInputTokens
		}
		raws[i] = float64(s.TaskQualityScore) / (price + valueEpsilon)
		minRaw = math.Min(minRaw, raws[i])
		maxRaw = math.Max(maxRaw, raws[i])
	}

	for i, raw := range raws {
		if maxRaw == minRaw {
			scored[i].ValueScore = 100
		} else {
			scored[i].ValueScore = clamp(int(math.Round((raw - minRaw) / (maxRaw - minRaw) * 100)))
		}
		scored[i].ValueLabel = valueLabel(scored[i].ValueScore)
	}
}

func valueLabel(score int) ValueLabel {
	switch {
	case score >= 90:
		return ValueBest
	case score >= 70:
		return ValueGood
	case score <= 20:
		return ValuePremium
	default:
		return ""
	}
}

// newestIndex finds the model with the latest release date, or -1 when no
// model carries one. Ties go to the earlier position in the ranked order.
func newestIndex(scored []ScoredModel) int {
	best := -1
	var bestTime time.Time
	for i, s := range scored {
		t, ok := s.ReleaseTime()
		if !ok {
			continue
		}
		if best == -1 || t.After(bestTime) {
			best = i
			bestTime = t
		}
	}
	return best
}

// fastestIndex finds the model holding the single maximum speed score, and
// only if it is genuinely fast: TTFT under the ceiling when latency is
// known, or a high speed score as a proxy when it isn't. Returns -1 when no
// model qualifies or the maximum is shared.
func fastestIndex(scored []ScoredModel) int {
	best := -1
	unique := true
	for i, s := range scored {
		if best == -1 || s.SpeedScore > scored[best].SpeedScore {
			best = i
			unique = true
		} else if s.SpeedScore == scored[best].SpeedScore {
			unique = false
		}
	}
	if best == -1 || !unique {
		return -1
	}

	s := scored[best]
	if s.ttftSeconds != nil {
		if *s.ttftSeconds >= fastestTTFTCeiling {
			return -1
		}
	} else if s.SpeedScore < fastestScoreProxy {
		return -1
	}
	return best
}

// specializationTags marks sub-indices that outscore the model's general
// intelligence index.
func specializationTags(s ScoredModel) []string {
	var tags []string
	if outscoresGeneral(s.CodingIndex, s.IntelligenceIndex) {
		tags = append(tags, "coding")
	}
	if outscoresGeneral(s.MathIndex, s.IntelligenceIndex) {
		tags = append(tags, "math")
	}
	return tags
}

func outscoresGeneral(specialty, general *float64) bool {
	if specialty == nil {
		return false
	}
	return general == nil || *specialty > *general
}

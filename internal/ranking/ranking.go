// Package ranking scores and ranks catalog models against user preferences.
// The whole pipeline is a pure function of (models, preferences): no hidden
// state, no I/O, so repeated calls with the same inputs are bit-identical.
package ranking

import (
	"fmt"
	"sort"

	"github.com/getbestai/getbestai/internal/catalog"
	"github.com/getbestai/getbestai/internal/prefs"
)

// ValueLabel tiers a model's quality-per-price ratio.
type ValueLabel string

const (
	ValueBest    ValueLabel = "best_value"
	ValueGood    ValueLabel = "good_value"
	ValuePremium ValueLabel = "premium"
)

// FeatureBadge is a display-only distinction within one result set.
// Each model carries at most one.
type FeatureBadge string

const (
	BadgeNewest         FeatureBadge = "newest"
	BadgeFastest        FeatureBadge = "fastest"
	BadgeHighestQuality FeatureBadge = "highest_quality"
)

// ScoredModel is a catalog model plus all derived scores. It is never
// persisted; it is recomputed on every preference change.
type ScoredModel struct {
	catalog.Model

	TaskQualityScore int    `json:"task_quality_score"`
	QualityLabel     string `json:"quality_label"`
	SpeedScore       int    `json:"speed_score"`
	BudgetScore      int    `json:"budget_score"`
	MatchScore       int    `json:"match_score"`
	Rank             int    `json:"rank"`

	ValueScore         int          `json:"value_score"`
	ValueLabel         ValueLabel   `json:"value_label,omitempty"`
	FeatureBadge       FeatureBadge `json:"feature_badge,omitempty"`
	SpecializationTags []string     `json:"specialization_tags,omitempty"`

	PricePerKTokens float64 `json:"price_per_1k_tokens"`

	// ttftSeconds is the resolved latency metric, kept for badge guards.
	ttftSeconds *float64
}

// Engine ranks models. The zero-configuration engine uses the default
// positional weight table; the table is configurable but the default is the
// out-of-box behavior.
type Engine struct {
	weights PositionWeights
}

// NewEngine creates a ranking engine with the default positional weights.
func NewEngine() *Engine {
	return &Engine{weights: DefaultPositionWeights}
}

// NewEngineWithWeights creates an engine with a custom positional weight
// table.
func NewEngineWithWeights(w PositionWeights) *Engine {
	return &Engine{weights: w}
}

// Rank scores every model against the preferences and returns the result
// sorted descending by match score. Ties keep the input (fetch) order via a
// stable sort. An empty model list yields an empty, non-nil result.
func (e *Engine) Rank(models []catalog.Model, p prefs.Preferences) ([]ScoredModel, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preferences: %w", err)
	}

	candidates := make([]catalog.Model, 0, len(models))
	for _, m := range models {
		if p.Excludes(m.Creator) {
			continue
		}
		candidates = append(candidates, m)
	}

	scored := make([]ScoredModel, len(candidates))
	metrics := make([]Metrics, len(candidates))
	for i, m := range candidates {
		metrics[i] = Normalize(m)
		tq := taskQuality(metrics[i], p)
		scored[i] = ScoredModel{
			Model:            m,
			TaskQualityScore: tq.Score,
			QualityLabel:     tq.Label,
			SpeedScore:       speedScore(metrics[i], p),
			PricePerKTokens:  metrics[i].PricePerKTokens,
			ttftSeconds:      metrics[i].TTFTSeconds,
		}
	}

	for i, b := range budgetScores(metrics) {
		scored[i].BudgetScore = b
	}

	weights := e.weights.For(p.PriorityOrder)
	for i := range scored {
		scored[i].MatchScore = matchScore(
			scored[i].TaskQualityScore, scored[i].SpeedScore, scored[i].BudgetScore, weights)
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].MatchScore > scored[b].MatchScore
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}

	annotate(scored)
	return scored, nil
}

// Rank scores models with the default engine.
func Rank(models []catalog.Model, p prefs.Preferences) ([]ScoredModel, error) {
	return NewEngine().Rank(models, p)
}

// clamp bounds a score to [0, 100].
func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

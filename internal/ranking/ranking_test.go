package ranking

import (
	"testing"

	"github.com/getbestai/getbestai/internal/catalog"
	"github.com/getbestai/getbestai/internal/prefs"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func testPrefs(tasks ...prefs.TaskType) prefs.Preferences {
	p := prefs.Default()
	p.TaskTypes = tasks
	return p
}

func TestRank_SortedDescendingWithRanks(t *testing.T) {
	models := []catalog.Model{
		{ID: "slow", Name: "Slow", Creator: "A", IntelligenceIndex: f(40), OutputTokensPerSecond: f(60), PricePer1MInputTokens: f(10), PricePer1MOutputTokens: f(30)},
		{ID: "good", Name: "Good", Creator: "B", IntelligenceIndex: f(90), OutputTokensPerSecond: f(180), PricePer1MInputTokens: f(1), PricePer1MOutputTokens: f(3)},
	}

	scored, err := Rank(models, testPrefs(prefs.TaskGeneration))
	require.NoError(t, err)
	require.Len(t, scored, 2)

	if scored[0].ID != "good" {
		t.Errorf("expected good first, got %s", scored[0].ID)
	}
	for i, s := range scored {
		if s.Rank != i+1 {
			t.Errorf("expected rank %d, got %d for %s", i+1, s.Rank, s.ID)
		}
	}
	if scored[0].MatchScore < scored[1].MatchScore {
		t.Errorf("result not sorted descending: %d < %d", scored[0].MatchScore, scored[1].MatchScore)
	}
}

func TestRank_Determinism(t *testing.T) {
	models := []catalog.Model{
		{ID: "a", Creator: "A", IntelligenceIndex: f(72), CodingIndex: f(80), OutputTokensPerSecond: f(95), TimeToFirstTokenSeconds: f(0.4), PricePer1MInputTokens: f(3), PricePer1MOutputTokens: f(15)},
		{ID: "b", Creator: "B", IntelligenceIndex: f(55), OutputTokensPerSecond: f(210), PricePer1MInputTokens: f(0.2), PricePer1MOutputTokens: f(0.8), ReleaseDate: "2025-06"},
		{ID: "c", Creator: "C", MathIndex: f(88), BlendedPricePer1M: f(4.5)},
	}
	p := testPrefs(prefs.TaskCoding, prefs.TaskQA)

	first, err := Rank(models, p)
	require.NoError(t, err)
	second, err := Rank(models, p)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRank_BoundedScores(t *testing.T) {
	models := []catalog.Model{
		{ID: "extreme", Creator: "A", IntelligenceIndex: f(100), CodingIndex: f(100), OutputTokensPerSecond: f(100000), TimeToFirstAnswerTokenSeconds: f(0), PricePer1MInputTokens: f(0), PricePer1MOutputTokens: f(0)},
		{ID: "pricey", Creator: "B", IntelligenceIndex: f(1), OutputTokensPerSecond: f(1), TimeToFirstTokenSeconds: f(500), PricePer1MInputTokens: f(900), PricePer1MOutputTokens: f(2700)},
		{ID: "empty", Creator: "C"},
	}

	scored, err := Rank(models, testPrefs(prefs.TaskCoding, prefs.TaskQA))
	require.NoError(t, err)

	for _, s := range scored {
		for name, v := range map[string]int{
			"task_quality": s.TaskQualityScore,
			"speed":        s.SpeedScore,
			"budget":       s.BudgetScore,
			"match":        s.MatchScore,
			"value":        s.ValueScore,
		} {
			if v < 0 || v > 100 {
				t.Errorf("%s: %s score %d out of range [0, 100]", s.ID, name, v)
			}
		}
	}
}

func TestRank_FallbackCompleteness(t *testing.T) {
	// A model with every optional field absent must still score fully.
	scored, err := Rank([]catalog.Model{{ID: "bare", Name: "Bare", Creator: "X"}}, testPrefs(prefs.TaskGeneration))
	require.NoError(t, err)
	require.Len(t, scored, 1)

	s := scored[0]
	if s.TaskQualityScore != 50 {
		t.Errorf("expected neutral task quality 50, got %d", s.TaskQualityScore)
	}
	if s.SpeedScore != 50 {
		t.Errorf("expected default speed 50, got %d", s.SpeedScore)
	}
	if s.BudgetScore < 0 || s.BudgetScore > 100 {
		t.Errorf("budget score %d not finite in range", s.BudgetScore)
	}
	if s.MatchScore < 0 || s.MatchScore > 100 {
		t.Errorf("match score %d not in range", s.MatchScore)
	}
}

func TestRank_EmptyModelList(t *testing.T) {
	scored, err := Rank(nil, testPrefs(prefs.TaskQA))
	require.NoError(t, err)
	require.NotNil(t, scored)
	require.Empty(t, scored)
}

func TestRank_InvalidPreferencesFailFast(t *testing.T) {
	models := []catalog.Model{{ID: "a", Creator: "A"}}

	// No task types selected.
	_, err := Rank(models, prefs.Default())
	require.Error(t, err)

	// Duplicate priority.
	p := testPrefs(prefs.TaskQA)
	p.PriorityOrder = prefs.PriorityOrder{prefs.PriorityQuality, prefs.PriorityQuality, prefs.PriorityBudget}
	_, err = Rank(models, p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate priority")
}

func TestRank_ExcludedProviders(t *testing.T) {
	models := []catalog.Model{
		{ID: "a", Creator: "OpenAI", IntelligenceIndex: f(90)},
		{ID: "b", Creator: "Anthropic", IntelligenceIndex: f(85)},
	}
	p := testPrefs(prefs.TaskGeneration)
	p.ExcludedProviders = []string{"openai"}

	scored, err := Rank(models, p)
	require.NoError(t, err)
	require.Len(t, scored, 1)
	require.Equal(t, "b", scored[0].ID)
}

func TestRank_PriorityReorderFlipsRanking(t *testing.T) {
	// A is quality-heavy, B is speed-heavy; identical prices so budget ties.
	models := []catalog.Model{
		{ID: "a", Creator: "A", IntelligenceIndex: f(90), OutputTokensPerSecond: f(100), PricePer1MInputTokens: f(5), PricePer1MOutputTokens: f(5)},
		{ID: "b", Creator: "B", IntelligenceIndex: f(50), OutputTokensPerSecond: f(180), PricePer1MInputTokens: f(5), PricePer1MOutputTokens: f(5)},
	}

	p := testPrefs(prefs.TaskGeneration)
	p.PriorityOrder = prefs.PriorityOrder{prefs.PriorityQuality, prefs.PrioritySpeed, prefs.PriorityBudget}
	scored, err := Rank(models, p)
	require.NoError(t, err)
	require.Equal(t, "a", scored[0].ID, "quality-first must rank the quality-heavy model on top")

	p.PriorityOrder = prefs.PriorityOrder{prefs.PrioritySpeed, prefs.PriorityQuality, prefs.PriorityBudget}
	scored, err = Rank(models, p)
	require.NoError(t, err)
	require.Equal(t, "b", scored[0].ID, "speed-first must rank the speed-heavy model on top")
}

func TestRank_StableTieOrder(t *testing.T) {
	// Identical models tie on every score; input order must be preserved.
	models := []catalog.Model{
		{ID: "first", Creator: "A", IntelligenceIndex: f(70), OutputTokensPerSecond: f(100), BlendedPricePer1M: f(2)},
		{ID: "second", Creator: "B", IntelligenceIndex: f(70), OutputTokensPerSecond: f(100), BlendedPricePer1M: f(2)},
	}

	scored, err := Rank(models, testPrefs(prefs.TaskGeneration))
	require.NoError(t, err)
	require.Equal(t, "first", scored[0].ID)
	require.Equal(t, "second", scored[1].ID)
}

func TestMatchScore_WeightApplication(t *testing.T) {
	weights := DefaultPositionWeights.For(prefs.PriorityOrder{prefs.PriorityQuality, prefs.PrioritySpeed, prefs.PriorityBudget})
	// round(80*0.50 + 60*0.33 + 40*0.17) = round(66.6) = 67
	if got := matchScore(80, 60, 40, weights); got != 67 {
		t.Errorf("expected 67, got %d", got)
	}
}

func TestMatchScore_ReorderExactValues(t *testing.T) {
	qualityFirst := DefaultPositionWeights.For(prefs.PriorityOrder{prefs.PriorityQuality, prefs.PrioritySpeed, prefs.PriorityBudget})
	speedFirst := DefaultPositionWeights.For(prefs.PriorityOrder{prefs.PrioritySpeed, prefs.PriorityQuality, prefs.PriorityBudget})

	// Model A {taskQ:90, speed:50, budget:50}, Model B {taskQ:50, speed:90, budget:50}.
	if got := matchScore(90, 50, 50, qualityFirst); got != 70 {
		t.Errorf("A quality-first: expected 70, got %d", got)
	}
	if got := matchScore(50, 90, 50, qualityFirst); got != 63 {
		t.Errorf("B quality-first: expected 63, got %d", got)
	}
	if got := matchScore(90, 50, 50, speedFirst); got != 63 {
		t.Errorf("A speed-first: expected 63, got %d", got)
	}
	if got := matchScore(50, 90, 50, speedFirst); got != 70 {
		t.Errorf("B speed-first: expected 70, got %d", got)
	}
}

func TestBudgetScores_MonotonicCheapness(t *testing.T) {
	metrics := []Metrics{
		{PricePerKTokens: 0.001},
		{PricePerKTokens: 0.03},
		{PricePerKTokens: 0.03},
		{PricePerKTokens: 0.5},
	}

	scores := budgetScores(metrics)
	if scores[0] != 100 {
		t.Errorf("cheapest must score 100, got %d", scores[0])
	}
	if scores[3] != 0 {
		t.Errorf("priciest must score 0, got %d", scores[3])
	}
	if scores[1] != scores[2] {
		t.Errorf("equal prices must score equally: %d vs %d", scores[1], scores[2])
	}
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[i-1] {
			t.Errorf("pricier model %d outscored cheaper model %d", i, i-1)
		}
	}
}

func TestBudgetScores_IdenticalPrices(t *testing.T) {
	metrics := []Metrics{
		{PricePerKTokens: 0.01},
		{PricePerKTokens: 0.01},
	}
	for i, s := range budgetScores(metrics) {
		if s != 100 {
			t.Errorf("model %d: expected tied-best 100 for identical prices, got %d", i, s)
		}
	}
}

func TestSpeedScore_InteractiveBlendsLatency(t *testing.T) {
	m := Metrics{ThroughputScore: 80, TTFTSeconds: f(1.0)}

	// Interactive: latency = round(100 - ln(2)*35) = round(75.7) = 76,
	// final = round(0.4*76 + 0.6*80) = round(78.4) = 78.
	if got := speedScore(m, testPrefs(prefs.TaskQA)); got != 78 {
		t.Errorf("expected 78 for interactive blend, got %d", got)
	}

	// Batch-style: throughput only.
	if got := speedScore(m, testPrefs(prefs.TaskCoding)); got != 80 {
		t.Errorf("expected 80 for batch tasks, got %d", got)
	}

	// Interactive but no TTFT data: throughput only.
	if got := speedScore(Metrics{ThroughputScore: 80}, testPrefs(prefs.TaskQA)); got != 80 {
		t.Errorf("expected 80 without TTFT, got %d", got)
	}
}

func TestSpeedScore_LatencyIsSublinear(t *testing.T) {
	fast := speedScore(Metrics{ThroughputScore: 50, TTFTSeconds: f(1)}, testPrefs(prefs.TaskQA))
	slow := speedScore(Metrics{ThroughputScore: 50, TTFTSeconds: f(2)}, testPrefs(prefs.TaskQA))
	if slow >= fast {
		t.Errorf("higher TTFT must lower the score: %d >= %d", slow, fast)
	}
	if fast > 2*slow {
		t.Errorf("doubling TTFT must not halve the score: %d vs %d", fast, slow)
	}
}

func TestTaskQuality_CodingBlend(t *testing.T) {
	m := Metrics{Quality: f(80), Coding: f(90)}
	tq := taskQuality(m, testPrefs(prefs.TaskCoding))
	// round(0.7*90 + 0.3*80) = round(87) = 87
	if tq.Score != 87 {
		t.Errorf("expected blended 87, got %d", tq.Score)
	}
	require.Equal(t, "Coding", tq.Label)
}

func TestTaskQuality_FallbackChain(t *testing.T) {
	// Coding absent: fall back to general quality.
	tq := taskQuality(Metrics{Quality: f(75)}, testPrefs(prefs.TaskCoding))
	if tq.Score != 75 {
		t.Errorf("expected general-quality fallback 75, got %d", tq.Score)
	}

	// Quality absent: use the coding index alone.
	tq = taskQuality(Metrics{Coding: f(62)}, testPrefs(prefs.TaskCoding))
	if tq.Score != 62 {
		t.Errorf("expected coding-only 62, got %d", tq.Score)
	}

	// Both absent: neutral default.
	tq = taskQuality(Metrics{}, testPrefs(prefs.TaskCoding))
	if tq.Score != 50 {
		t.Errorf("expected neutral 50, got %d", tq.Score)
	}
}

func TestTaskQuality_AnalysisUsesMath(t *testing.T) {
	m := Metrics{Quality: f(70), Math: f(90)}
	tq := taskQuality(m, testPrefs(prefs.TaskAnalysis))
	// round(0.7*90 + 0.3*70) = 84
	if tq.Score != 84 {
		t.Errorf("expected 84, got %d", tq.Score)
	}
	require.Equal(t, "Reasoning", tq.Label)
}

func TestTaskQuality_SelectionPrecedence(t *testing.T) {
	m := Metrics{Quality: f(70), Coding: f(90), Math: f(80)}

	// Coding beats analysis when both selected.
	tq := taskQuality(m, testPrefs(prefs.TaskAnalysis, prefs.TaskCoding))
	require.Equal(t, "Coding", tq.Label)

	// Analysis beats the generic group.
	tq = taskQuality(m, testPrefs(prefs.TaskTranslation, prefs.TaskAnalysis))
	require.Equal(t, "Reasoning", tq.Label)

	// Generic group: translation beats creative beats generation.
	tq = taskQuality(m, testPrefs(prefs.TaskGeneration, prefs.TaskCreative, prefs.TaskTranslation))
	require.Equal(t, "Translation Quality", tq.Label)
	tq = taskQuality(m, testPrefs(prefs.TaskGeneration, prefs.TaskCreative))
	require.Equal(t, "Creativity", tq.Label)
	tq = taskQuality(m, testPrefs(prefs.TaskGeneration))
	require.Equal(t, "Writing Quality", tq.Label)

	// QA only: default label, plain quality score.
	tq = taskQuality(m, testPrefs(prefs.TaskQA))
	require.Equal(t, "Quality", tq.Label)
	if tq.Score != 70 {
		t.Errorf("expected plain quality 70, got %d", tq.Score)
	}
}

func TestNormalize_Throughput(t *testing.T) {
	if got := Normalize(catalog.Model{OutputTokensPerSecond: f(30)}).ThroughputScore; got != 15 {
		t.Errorf("expected 15, got %d", got)
	}
	if got := Normalize(catalog.Model{OutputTokensPerSecond: f(500)}).ThroughputScore; got != 100 {
		t.Errorf("expected cap at 100, got %d", got)
	}
	if got := Normalize(catalog.Model{}).ThroughputScore; got != 50 {
		t.Errorf("expected default 50, got %d", got)
	}
}

func TestNormalize_PriceBlending(t *testing.T) {
	// Pre-blended figure wins.
	m := Normalize(catalog.Model{BlendedPricePer1M: f(8), PricePer1MInputTokens: f(100), PricePer1MOutputTokens: f(100)})
	require.InDelta(t, 0.008, m.PricePerKTokens, 1e-9)

	// Otherwise 3:1 input:output weighting.
	m = Normalize(catalog.Model{PricePer1MInputTokens: f(4), PricePer1MOutputTokens: f(12)})
	require.InDelta(t, 0.006, m.PricePerKTokens, 1e-9)
}

func TestNormalize_PrefersAnswerTokenLatency(t *testing.T) {
	m := Normalize(catalog.Model{TimeToFirstTokenSeconds: f(0.5), TimeToFirstAnswerTokenSeconds: f(2.5)})
	require.NotNil(t, m.TTFTSeconds)
	require.Equal(t, 2.5, *m.TTFTSeconds)

	m = Normalize(catalog.Model{TimeToFirstTokenSeconds: f(0.5)})
	require.NotNil(t, m.TTFTSeconds)
	require.Equal(t, 0.5, *m.TTFTSeconds)
}

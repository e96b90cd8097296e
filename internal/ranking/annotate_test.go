package ranking

import (
	"testing"

	"github.com/getbestai/getbestai/internal/catalog"
	"github.com/getbestai/getbestai/internal/prefs"
	"github.com/stretchr/testify/require"
)

func TestValueLabel_Thresholds(t *testing.T) {
	cases := []struct {
		score int
		want  ValueLabel
	}{
		{100, ValueBest},
		{90, ValueBest},
		{89, ValueGood},
		{70, ValueGood},
		{69, ""},
		{21, ""},
		{20, ValuePremium},
		{0, ValuePremium},
	}
	for _, tc := range cases {
		if got := valueLabel(tc.score); got != tc.want {
			t.Errorf("valueLabel(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestAnnotateValue_Extremes(t *testing.T) {
	scored := []ScoredModel{
		{Model: catalog.Model{ID: "cheap-good", PricePer1MInputTokens: f(0.5)}, TaskQualityScore: 80},
		{Model: catalog.Model{ID: "mid", PricePer1MInputTokens: f(10)}, TaskQualityScore: 70},
		{Model: catalog.Model{ID: "pricey", PricePer1MInputTokens: f(60)}, TaskQualityScore: 90},
	}

	annotateValue(scored)

	if scored[0].ValueScore != 100 {
		t.Errorf("best ratio must normalize to 100, got %d", scored[0].ValueScore)
	}
	require.Equal(t, ValueBest, scored[0].ValueLabel)
	if scored[2].ValueScore != 0 {
		t.Errorf("worst ratio must normalize to 0, got %d", scored[2].ValueScore)
	}
	require.Equal(t, ValuePremium, scored[2].ValueLabel)
}

func TestAnnotateValue_IdenticalRatios(t *testing.T) {
	scored := []ScoredModel{
		{Model: catalog.Model{ID: "a", PricePer1MInputTokens: f(2)}, TaskQualityScore: 60},
		{Model: catalog.Model{ID: "b", PricePer1MInputTokens: f(2)}, TaskQualityScore: 60},
	}
	annotateValue(scored)
	for _, s := range scored {
		if s.ValueScore != 100 {
			t.Errorf("%s: identical ratios must all score 100, got %d", s.ID, s.ValueScore)
		}
	}
}

func TestAnnotateValue_FreeModelNoDivideByZero(t *testing.T) {
	scored := []ScoredModel{
		{Model: catalog.Model{ID: "free"}, TaskQualityScore: 50},
		{Model: catalog.Model{ID: "paid", PricePer1MInputTokens: f(20)}, TaskQualityScore: 90},
	}
	annotateValue(scored)
	if scored[0].ValueScore != 100 {
		t.Errorf("free model with decent quality must top the value scale, got %d", scored[0].ValueScore)
	}
}

func fastestFixture(ttft *float64) []catalog.Model {
	return []catalog.Model{
		{ID: "speedy", Creator: "A", IntelligenceIndex: f(50), OutputTokensPerSecond: f(190), TimeToFirstTokenSeconds: ttft, BlendedPricePer1M: f(2)},
		{ID: "smart", Creator: "B", IntelligenceIndex: f(90), OutputTokensPerSecond: f(100), BlendedPricePer1M: f(2)},
		{ID: "other", Creator: "C", IntelligenceIndex: f(60), OutputTokensPerSecond: f(100), BlendedPricePer1M: f(2)},
	}
}

func badgeOf(t *testing.T, scored []ScoredModel, id string) FeatureBadge {
	t.Helper()
	for _, s := range scored {
		if s.ID == id {
			return s.FeatureBadge
		}
	}
	t.Fatalf("model %s not in result", id)
	return ""
}

func TestFastestBadge_LatencyGuard(t *testing.T) {
	// Top speed score but 8s to first token: not genuinely fast.
	scored, err := Rank(fastestFixture(f(8)), testPrefs(prefs.TaskGeneration))
	require.NoError(t, err)
	if got := badgeOf(t, scored, "speedy"); got == BadgeFastest {
		t.Errorf("8s TTFT must block the fastest badge")
	}

	// Same speed score with 1.5s TTFT qualifies.
	scored, err = Rank(fastestFixture(f(1.5)), testPrefs(prefs.TaskGeneration))
	require.NoError(t, err)
	require.Equal(t, BadgeFastest, badgeOf(t, scored, "speedy"))
}

func TestFastestBadge_ScoreProxyWithoutTTFT(t *testing.T) {
	// Unknown TTFT: a 95 speed score passes the >=85 proxy.
	scored, err := Rank(fastestFixture(nil), testPrefs(prefs.TaskGeneration))
	require.NoError(t, err)
	require.Equal(t, BadgeFastest, badgeOf(t, scored, "speedy"))

	// Unknown TTFT and a modest top score does not.
	models := fastestFixture(nil)
	models[0].OutputTokensPerSecond = f(120) // speed 60, still the unique max
	models[1].OutputTokensPerSecond = f(80)
	models[2].OutputTokensPerSecond = f(80)
	scored, err = Rank(models, testPrefs(prefs.TaskGeneration))
	require.NoError(t, err)
	if got := badgeOf(t, scored, "speedy"); got == BadgeFastest {
		t.Errorf("speed score below the proxy threshold must not earn the badge")
	}
}

func TestFastestBadge_SharedMaximumDisqualifies(t *testing.T) {
	models := fastestFixture(f(0.5))
	models[1].OutputTokensPerSecond = f(190)
	models[1].TimeToFirstTokenSeconds = f(0.5)
	scored, err := Rank(models, testPrefs(prefs.TaskGeneration))
	require.NoError(t, err)
	for _, s := range scored {
		if s.FeatureBadge == BadgeFastest {
			t.Errorf("shared top speed score must leave the fastest badge unassigned, %s got it", s.ID)
		}
	}
}

func TestNewestBadge_WinsPrecedence(t *testing.T) {
	models := fastestFixture(f(0.5))
	models[0].ReleaseDate = "2025-08" // speedy is also the newest
	scored, err := Rank(models, testPrefs(prefs.TaskGeneration))
	require.NoError(t, err)

	// One feature badge per model: newest outranks fastest.
	require.Equal(t, BadgeNewest, badgeOf(t, scored, "speedy"))
}

func TestNewestBadge_MonthOnlyDates(t *testing.T) {
	models := []catalog.Model{
		{ID: "a", Creator: "A", ReleaseDate: "2025-03-15", BlendedPricePer1M: f(2)},
		{ID: "b", Creator: "B", ReleaseDate: "2025-04", BlendedPricePer1M: f(2)},
	}
	scored, err := Rank(models, testPrefs(prefs.TaskGeneration))
	require.NoError(t, err)
	require.Equal(t, BadgeNewest, badgeOf(t, scored, "b"))
}

func TestHighestQualityBadge_TiesShareIt(t *testing.T) {
	models := []catalog.Model{
		{ID: "a", Creator: "A", IntelligenceIndex: f(90), OutputTokensPerSecond: f(100), BlendedPricePer1M: f(2)},
		{ID: "b", Creator: "B", IntelligenceIndex: f(90), OutputTokensPerSecond: f(100), BlendedPricePer1M: f(2)},
		{ID: "c", Creator: "C", IntelligenceIndex: f(40), OutputTokensPerSecond: f(100), BlendedPricePer1M: f(2)},
	}
	scored, err := Rank(models, testPrefs(prefs.TaskGeneration))
	require.NoError(t, err)

	require.Equal(t, BadgeHighestQuality, badgeOf(t, scored, "a"))
	require.Equal(t, BadgeHighestQuality, badgeOf(t, scored, "b"))
	require.Equal(t, FeatureBadge(""), badgeOf(t, scored, "c"))
}

func TestSpecializationTags(t *testing.T) {
	s := ScoredModel{Model: catalog.Model{
		IntelligenceIndex: f(70), CodingIndex: f(85), MathIndex: f(60),
	}}
	require.Equal(t, []string{"coding"}, specializationTags(s))

	s = ScoredModel{Model: catalog.Model{CodingIndex: f(85), MathIndex: f(90)}}
	require.Equal(t, []string{"coding", "math"}, specializationTags(s))

	s = ScoredModel{Model: catalog.Model{IntelligenceIndex: f(70)}}
	require.Empty(t, specializationTags(s))
}

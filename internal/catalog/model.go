// Package catalog fetches and decodes the Artificial Analysis LLM model
// catalog. Optional upstream metrics are modeled as nil pointers so the
// ranking layer can distinguish "absent" from "zero".
package catalog

import "time"

// Model is one record from the LLM catalog. Any pointer field may be nil:
// the upstream payload omits metrics for many models, and a missing metric
// is a first-class state rather than an error.
type Model struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Creator string `json:"creator"`

	IntelligenceIndex *float64 `json:"intelligence_index,omitempty"`
	CodingIndex       *float64 `json:"coding_index,omitempty"`
	MathIndex         *float64 `json:"math_index,omitempty"`

	OutputTokensPerSecond         *float64 `json:"output_tokens_per_second,omitempty"`
	TimeToFirstTokenSeconds       *float64 `json:"time_to_first_token_seconds,omitempty"`
	TimeToFirstAnswerTokenSeconds *float64 `json:"time_to_first_answer_token_seconds,omitempty"`

	PricePer1MInputTokens  *float64 `json:"price_per_1m_input_tokens,omitempty"`
	PricePer1MOutputTokens *float64 `json:"price_per_1m_output_tokens,omitempty"`
	BlendedPricePer1M      *float64 `json:"blended_price_per_1m,omitempty"`

	// ReleaseDate is "YYYY-MM" or "YYYY-MM-DD"; empty when unknown.
	ReleaseDate string `json:"release_date,omitempty"`
}

// ReleaseTime parses ReleaseDate. A "YYYY-MM" date is treated as the first
// of that month. The second return is false when the date is absent or
// unparseable.
func (m Model) ReleaseTime() (time.Time, bool) {
	if m.ReleaseDate == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, m.ReleaseDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

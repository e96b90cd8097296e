package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// wireModel mirrors the shape of one entry in the Artificial Analysis
// v2 /data/llms/models response. Numeric fields decode as `any` so a
// malformed value poisons only that field, never the whole payload.
type wireModel struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	ModelCreator struct {
		Name string `json:"name"`
	} `json:"model_creator"`
	ReleaseDate any `json:"release_date"`

	Pricing struct {
		Blended any `json:"price_1m_blended_3_to_1"`
		Input   any `json:"price_1m_input_tokens"`
		Output  any `json:"price_1m_output_tokens"`
	} `json:"pricing"`

	MedianOutputTokensPerSecond    any `json:"median_output_tokens_per_second"`
	MedianTimeToFirstTokenSeconds  any `json:"median_time_to_first_token_seconds"`
	MedianTimeToFirstAnswerSeconds any `json:"median_time_to_first_answer_token"`

	Evaluations struct {
		IntelligenceIndex any `json:"artificial_analysis_intelligence_index"`
		CodingIndex       any `json:"artificial_analysis_coding_index"`
		MathIndex         any `json:"artificial_analysis_math_index"`
	} `json:"evaluations"`
}

// wireCatalog is the top-level upstream response.
type wireCatalog struct {
	Data []wireModel `json:"data"`
}

// DecodeCatalog parses a raw Artificial Analysis catalog payload into the
// flat Model representation. Malformed numeric fields are treated as absent.
func DecodeCatalog(data []byte) ([]Model, error) {
	var wire wireCatalog
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decoding catalog payload: %w", err)
	}

	models := make([]Model, 0, len(wire.Data))
	for _, w := range wire.Data {
		models = append(models, w.toModel())
	}
	return models, nil
}

func (w wireModel) toModel() Model {
	id := w.ID
	if id == "" {
		id = w.Slug
	}
	if id == "" {
		id = w.Name
	}
	creator := w.ModelCreator.Name
	if creator == "" {
		creator = "Unknown"
	}

	return Model{
		ID:      id,
		Name:    w.Name,
		Creator: creator,

		IntelligenceIndex: metric(w.Evaluations.IntelligenceIndex),
		CodingIndex:       metric(w.Evaluations.CodingIndex),
		MathIndex:         metric(w.Evaluations.MathIndex),

		OutputTokensPerSecond:         metric(w.MedianOutputTokensPerSecond),
		TimeToFirstTokenSeconds:       metric(w.MedianTimeToFirstTokenSeconds),
		TimeToFirstAnswerTokenSeconds: metric(w.MedianTimeToFirstAnswerSeconds),

		PricePer1MInputTokens:  metric(w.Pricing.Input),
		PricePer1MOutputTokens: metric(w.Pricing.Output),
		BlendedPricePer1M:      metric(w.Pricing.Blended),

		ReleaseDate: stringValue(w.ReleaseDate),
	}
}

// metric coerces an arbitrary JSON value into an optional non-negative
// number. Non-numeric and negative values are treated as absent, never as
// errors.
func metric(v any) *float64 {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil
		}
		f = parsed
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if f < 0 {
		return nil
	}
	return &f
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

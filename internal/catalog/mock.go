package catalog

// Fallback returns a small fixed model list used when the upstream API is
// unreachable or unconfigured, so callers can always render something.
func Fallback() []Model {
	return []Model{
		{
			ID:                     "gpt-4-turbo",
			Name:                   "GPT-4 Turbo",
			Creator:                "OpenAI",
			IntelligenceIndex:      ptr(95),
			CodingIndex:            ptr(92),
			OutputTokensPerSecond:  ptr(75),
			PricePer1MInputTokens:  ptr(30),
			PricePer1MOutputTokens: ptr(60),
			ReleaseDate:            "2024-04",
		},
		{
			ID:                      "claude-3-sonnet",
			Name:                    "Claude 3 Sonnet",
			Creator:                 "Anthropic",
			IntelligenceIndex:       ptr(88),
			CodingIndex:             ptr(85),
			MathIndex:               ptr(80),
			OutputTokensPerSecond:   ptr(110),
			TimeToFirstTokenSeconds: ptr(0.9),
			PricePer1MInputTokens:   ptr(15),
			PricePer1MOutputTokens:  ptr(75),
			ReleaseDate:             "2024-03-04",
		},
		{
			ID:                      "gemini-pro",
			Name:                    "Gemini Pro",
			Creator:                 "Google",
			IntelligenceIndex:       ptr(82),
			OutputTokensPerSecond:   ptr(140),
			TimeToFirstTokenSeconds: ptr(0.6),
			PricePer1MInputTokens:   ptr(0.5),
			PricePer1MOutputTokens:  ptr(1.5),
			ReleaseDate:             "2023-12",
		},
	}
}

func ptr(v float64) *float64 { return &v }

package prefs

// tokensPerWord is the approximate token cost of one word per language.
// English tokenizes most efficiently; Cyrillic and CJK scripts cost more.
// This is a static display constant and plays no part in scoring.
var tokensPerWord = map[string]float64{
	"en": 0.75,
	"ru": 2.5,
	"de": 1.2,
	"fr": 1.1,
	"es": 1.0,
	"zh": 1.8,
}

// TokenRatio returns the tokens-per-word ratio for a language code,
// defaulting to 1 for unknown languages.
func TokenRatio(lang string) float64 {
	if r, ok := tokensPerWord[lang]; ok {
		return r
	}
	return 1
}

// PricePerWord estimates the dollar cost of one word, given a per-1K-token
// price and the input/output language pair. The two ratios are averaged
// since a typical request spends tokens on both sides.
func PricePerWord(pricePer1KTokens float64, inputLang, outputLang string) float64 {
	avgRatio := (TokenRatio(inputLang) + TokenRatio(outputLang)) / 2
	return pricePer1KTokens / 1000 * avgRatio
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getbestai/getbestai/internal/catalog"
	"github.com/getbestai/getbestai/internal/spinner"
)

func newFetchCommand() *cobra.Command {
	var (
		noCache bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the model catalog and report metric coverage",
		Long: `Fetch the model catalog and report metric coverage.

The upstream catalog omits metrics for many models. This command shows how
many models carry each metric, which is useful for judging how much of a
ranking rests on real data versus neutral fallbacks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return &BadInputError{Message: err.Error()}
			}

			logger := slog.Default()
			client := newCatalogClient(cfg, noCache, logger)

			stop := spinner.Start(cmd.ErrOrStderr(), "Fetching model catalog")
			models, err := client.Models(cmd.Context())
			stop()
			if err != nil {
				return fmt.Errorf("fetching catalog: %w", err)
			}

			cov := coverage(models)
			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(cov)
			}
			renderCoverage(out, len(models), cov)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the catalog cache")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit coverage as JSON")

	return cmd
}

// fieldCoverage is how many models carry one metric, plus its observed
// range. Min/Avg/Max are zero when no model carries the metric.
type fieldCoverage struct {
	Field string  `json:"field"`
	Count int     `json:"count"`
	Min   float64 `json:"min,omitempty"`
	Avg   float64 `json:"avg,omitempty"`
	Max   float64 `json:"max,omitempty"`
}

func coverage(models []catalog.Model) []fieldCoverage {
	counts := []fieldCoverage{
		{Field: "intelligence_index"},
		{Field: "coding_index"},
		{Field: "math_index"},
		{Field: "output_tokens_per_second"},
		{Field: "time_to_first_token_seconds"},
		{Field: "time_to_first_answer_token_seconds"},
		{Field: "price_per_1m_input_tokens"},
		{Field: "price_per_1m_output_tokens"},
		{Field: "blended_price_per_1m"},
		{Field: "release_date"},
	}
	sums := make([]float64, len(counts))

	for _, m := range models {
		present := []*float64{
			m.IntelligenceIndex,
			m.CodingIndex,
			m.MathIndex,
			m.OutputTokensPerSecond,
			m.TimeToFirstTokenSeconds,
			m.TimeToFirstAnswerTokenSeconds,
			m.PricePer1MInputTokens,
			m.PricePer1MOutputTokens,
			m.BlendedPricePer1M,
		}
		for i, v := range present {
			if v == nil {
				continue
			}
			if counts[i].Count == 0 || *v < counts[i].Min {
				counts[i].Min = *v
			}
			if counts[i].Count == 0 || *v > counts[i].Max {
				counts[i].Max = *v
			}
			sums[i] += *v
			counts[i].Count++
		}
		if m.ReleaseDate != "" {
			counts[len(counts)-1].Count++
		}
	}

	for i := range counts {
		if counts[i].Count > 0 && i < len(sums) && counts[i].Field != "release_date" {
			counts[i].Avg = sums[i] / float64(counts[i].Count)
		}
	}
	return counts
}

func renderCoverage(w io.Writer, total int, cov []fieldCoverage) {
	fieldWidth := len("Field")
	for _, c := range cov {
		if len(c.Field) > fieldWidth {
			fieldWidth = len(c.Field)
		}
	}

	const colPresent = 12

	fmt.Fprintf(w, "\n%d models in catalog\n\n", total) //nolint:errcheck
	fmt.Fprintf(w, "%s  %s  %s\n",                      //nolint:errcheck
		padRight("Field", fieldWidth), padRight("Present", colPresent), "Min / Avg / Max")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", fieldWidth+colPresent+20)) //nolint:errcheck
	for _, c := range cov {
		pct := 0.0
		if total > 0 {
			pct = float64(c.Count) / float64(total) * 100
		}
		present := fmt.Sprintf("%d (%.0f%%)", c.Count, pct)
		rangeCol := "-"
		if c.Count > 0 && c.Field != "release_date" {
			rangeCol = fmt.Sprintf("%.2f / %.2f / %.2f", c.Min, c.Avg, c.Max)
		}
		fmt.Fprintf(w, "%s  %s  %s\n", //nolint:errcheck
			padRight(c.Field, fieldWidth), padRight(present, colPresent), rangeCol)
	}
	fmt.Fprintf(w, "\n") //nolint:errcheck
}

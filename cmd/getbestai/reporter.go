package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/getbestai/getbestai/internal/prefs"
	"github.com/getbestai/getbestai/internal/ranking"
)

var badgeIcons = map[ranking.FeatureBadge]string{
	ranking.BadgeNewest:         "🆕 newest",
	ranking.BadgeFastest:        "⚡ fastest",
	ranking.BadgeHighestQuality: "🏆 top quality",
}

var valueLabels = map[ranking.ValueLabel]string{
	ranking.ValueBest:    "best value",
	ranking.ValueGood:    "good value",
	ranking.ValuePremium: "premium",
}

// renderResults prints the top results as an aligned table followed by a
// per-model detail line.
func renderResults(w io.Writer, scored []ranking.ScoredModel, count int, p prefs.Preferences) {
	if len(scored) == 0 {
		fmt.Fprintln(w, "No models matched your preferences.") //nolint:errcheck
		return
	}
	if count <= 0 || count > len(scored) {
		count = len(scored)
	}
	top := scored[:count]

	nameWidth := len("Model")
	creatorWidth := len("Creator")
	for _, m := range top {
		if w := runewidth.StringWidth(m.Name); w > nameWidth {
			nameWidth = w
		}
		if w := runewidth.StringWidth(m.Creator); w > creatorWidth {
			creatorWidth = w
		}
	}

	// Fixed column widths (display columns) for emoji-safe alignment.
	const colRank = 4
	const colMatch = 5
	const colQuality = 9
	const colSpeed = 5
	const colBudget = 6
	const colPrice = 10
	totalWidth := colRank + nameWidth + creatorWidth + colMatch + colQuality + colSpeed + colBudget + colPrice + 16 // 16 = 8 gaps × 2 spaces

	fmt.Fprintf(w, "\n")                                    //nolint:errcheck
	fmt.Fprintf(w, "%s\n", strings.Repeat("═", totalWidth)) //nolint:errcheck
	fmt.Fprintf(w, " BEST MATCHES  (%s first)\n", p.PriorityOrder[0])
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("═", totalWidth)) //nolint:errcheck

	fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s  %s  %s\n", //nolint:errcheck
		padRight("#", colRank),
		padRight("Model", nameWidth),
		padRight("Creator", creatorWidth),
		padRight("Match", colMatch),
		padRight("Quality", colQuality),
		padRight("Speed", colSpeed),
		padRight("Budget", colBudget),
		"$/1K tok")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth)) //nolint:errcheck

	for _, m := range top {
		quality := fmt.Sprintf("%d", m.TaskQualityScore)
		if m.QualityLabel != "" {
			quality = fmt.Sprintf("%d %s", m.TaskQualityScore, shortLabel(m.QualityLabel))
		}
		fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s  %s  %.4f\n", //nolint:errcheck
			padRight(fmt.Sprintf("%d", m.Rank), colRank),
			padRight(m.Name, nameWidth),
			padRight(m.Creator, creatorWidth),
			padRight(fmt.Sprintf("%d", m.MatchScore), colMatch),
			padRight(quality, colQuality),
			padRight(fmt.Sprintf("%d", m.SpeedScore), colSpeed),
			padRight(fmt.Sprintf("%d", m.BudgetScore), colBudget),
			m.PricePerKTokens)

		if detail := detailLine(m, p); detail != "" {
			fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", colRank+2), detail) //nolint:errcheck
		}
	}
	fmt.Fprintf(w, "\n") //nolint:errcheck
}

// detailLine collects badges, value labels, and the per-word price estimate
// for one model.
func detailLine(m ranking.ScoredModel, p prefs.Preferences) string {
	var parts []string
	if icon, ok := badgeIcons[m.FeatureBadge]; ok {
		parts = append(parts, icon)
	}
	if label, ok := valueLabels[m.ValueLabel]; ok {
		parts = append(parts, label)
	}
	if len(m.SpecializationTags) > 0 {
		parts = append(parts, "strong at "+strings.Join(m.SpecializationTags, ", "))
	}
	if p.InputLanguage != "" && p.OutputLanguage != "" && m.PricePerKTokens > 0 {
		perWord := prefs.PricePerWord(m.PricePerKTokens, p.InputLanguage, p.OutputLanguage)
		parts = append(parts, fmt.Sprintf("~$%.6f/word", perWord))
	}
	return strings.Join(parts, " · ")
}

// shortLabel compresses a quality label for the table column.
func shortLabel(label string) string {
	switch label {
	case "Translation Quality":
		return "(transl)"
	case "Writing Quality":
		return "(writing)"
	case "Creativity":
		return "(creative)"
	case "Reasoning":
		return "(reason)"
	case "Coding":
		return "(coding)"
	default:
		return ""
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// writeResultsJSON emits the top results as indented JSON.
func writeResultsJSON(w io.Writer, scored []ranking.ScoredModel, count int) error {
	if count <= 0 || count > len(scored) {
		count = len(scored)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scored[:count])
}

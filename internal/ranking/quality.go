package ranking

import (
	"math"

	"github.com/getbestai/getbestai/internal/prefs"
)

// neutralQuality is the score for a model with no quality data at all.
const neutralQuality = 50

// TaskQuality pairs the task-specific quality score with its display label.
type TaskQuality struct {
	Score int
	Label string
}

// genericLabels maps the non-specialized task types to their quality label,
// in fixed precedence order: first selected type wins.
var genericLabels = []struct {
	task  prefs.TaskType
	label string
}{
	{prefs.TaskTranslation, "Translation Quality"},
	{prefs.TaskCreative, "Creativity"},
	{prefs.TaskGeneration, "Writing Quality"},
}

// taskQuality picks the quality sub-score relevant to the selected task
// types. Coding takes precedence over analysis, which takes precedence over
// the generic label group.
func taskQuality(m Metrics, p prefs.Preferences) TaskQuality {
	if p.HasTask(prefs.TaskCoding) {
		return TaskQuality{Score: blendQuality(m.Coding, m.Quality), Label: "Coding"}
	}
	if p.HasTask(prefs.TaskAnalysis) {
		return TaskQuality{Score: blendQuality(m.Math, m.Quality), Label: "Reasoning"}
	}

	score := neutralQuality
	if m.Quality != nil {
		score = clamp(int(math.Round(*m.Quality)))
	}
	for _, g := range genericLabels {
		if p.HasTask(g.task) {
			return TaskQuality{Score: score, Label: g.label}
		}
	}
	return TaskQuality{Score: score, Label: "Quality"}
}

// blendQuality combines a task-specific sub-index with the general quality
// index at 70/30, falling back to whichever is present, then to neutral.
func blendQuality(specialty, general *float64) int {
	switch {
	case specialty != nil && general != nil:
		return clamp(int(math.Round(0.7**specialty + 0.3**general)))
	case specialty != nil:
		return clamp(int(math.Round(*specialty)))
	case general != nil:
		return clamp(int(math.Round(*general)))
	default:
		return neutralQuality
	}
}

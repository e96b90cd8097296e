package ranking

import (
	"math"

	"github.com/getbestai/getbestai/internal/prefs"
)

// speedScore computes a throughput-only score for batch-style work, or a
// latency-blended score for interactive task sets. Latency enters at a log
// rate: doubling TTFT should not halve the score. Throughput keeps the
// larger share because most response time is generation, not first-token
// delay.
func speedScore(m Metrics, p prefs.Preferences) int {
	tps := m.ThroughputScore

	interactive := p.HasAnyTask(prefs.TaskQA, prefs.TaskCreative, prefs.TaskTranslation)
	if !interactive || m.TTFTSeconds == nil {
		return clamp(tps)
	}

	latency := math.Round(math.Max(0, 100-math.Log1p(*m.TTFTSeconds)*35))
	return clamp(int(math.Round(0.4*latency + 0.6*float64(tps))))
}

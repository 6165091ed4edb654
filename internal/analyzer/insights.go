package analyzer

import (
	"math"
	"sort"

	"github.com/yt-metrics/internal/models"
)

const (
	shortsHeavyRatio     = 0.5
	shortsAdvantageRatio = 1.3
	minCorrelationSample = 3
	correlationThreshold = 0.2
)

// ChannelInsights aggregates metrics across several analyzed channels
// into comparative signals and strategy suggestions.
type ChannelInsights struct {
	ChannelsAnalyzed  int      `json:"channels_analyzed"`
	MedianShortsRatio float64  `json:"median_shorts_ratio"`
	TopOverallTopics  []string `json:"top_overall_topics"`
	Suggestions       []string `json:"suggestions"`
}

// AggregateInsights summarizes a batch of per-channel metrics. Channels
// with zero uploads per week are skipped for the shorts ratio; topic
// ranking keeps first-seen order on ties, like the per-channel ranking.
func AggregateInsights(analyses []models.ChannelMetrics) ChannelInsights {
	insights := ChannelInsights{
		TopOverallTopics: []string{},
		Suggestions:      []string{},
	}
	if len(analyses) == 0 {
		return insights
	}
	insights.ChannelsAnalyzed = len(analyses)

	var ratios []float64
	for _, m := range analyses {
		if m.AvgUploadsPerWeek > 0 {
			ratios = append(ratios, clamp01(m.AvgUploadsShortsPerWeek/m.AvgUploadsPerWeek))
		}
	}
	insights.MedianShortsRatio = round2(median(ratios))

	counts := make(map[string]int)
	var order []string
	for _, m := range analyses {
		for _, topic := range m.TopTopics {
			if counts[topic] == 0 {
				order = append(order, topic)
			}
			counts[topic]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topTopicsLimit {
		order = order[:topTopicsLimit]
	}
	insights.TopOverallTopics = order

	insights.Suggestions = append(insights.Suggestions, mixSuggestion(analyses)...)
	insights.Suggestions = append(insights.Suggestions, cadenceSuggestion(analyses))

	return insights
}

// mixSuggestion compares average sample views between shorts-heavy and
// mixed/long-form channels.
func mixSuggestion(analyses []models.ChannelMetrics) []string {
	var highViews, lowViews []float64
	for _, m := range analyses {
		if m.AvgUploadsPerWeek <= 0 {
			continue
		}
		ratio := clamp01(m.AvgUploadsShortsPerWeek / m.AvgUploadsPerWeek)
		if ratio > shortsHeavyRatio {
			highViews = append(highViews, m.AvgViewsSample)
		} else {
			lowViews = append(lowViews, m.AvgViewsSample)
		}
	}
	if len(highViews) == 0 || len(lowViews) == 0 {
		return nil
	}
	if mean(highViews) > mean(lowViews)*shortsAdvantageRatio {
		return []string{"Shorts-heavy channels tend to get higher avg views — consider a shorts-first strategy for reach."}
	}
	return []string{"Maintain a healthy mix of shorts and long-form; long-form drives depth and conversions."}
}

// cadenceSuggestion correlates upload frequency with average views when
// enough channels are available.
func cadenceSuggestion(analyses []models.ChannelMetrics) string {
	var xs, ys []float64
	for _, m := range analyses {
		x, y := m.AvgUploadsPerWeek, m.AvgViewsSample
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(xs) < minCorrelationSample {
		return "Insufficient data to assess upload frequency vs. views correlation; emphasize content quality."
	}
	if pearson(xs, ys) > correlationThreshold {
		return "Increasing upload frequency correlates with higher avg views; aim for consistent cadence (e.g., 2-4/week)."
	}
	return "Upload frequency has unclear correlation; prioritize content quality and targeted topics."
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// pearson computes the sample correlation coefficient; 0 when either
// series has no variance.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	mx, my := mean(xs), mean(ys)
	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 || n == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

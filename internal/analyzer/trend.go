package analyzer

import (
	"math"
	"sort"

	"github.com/yt-metrics/internal/models"
)

const (
	// Projection horizon: 26 weeks ≈ 6 months.
	futureWeeks = 26
	// Fallback averages over at most this many recent weeks.
	fallbackWindowWeeks = 8
	// Views-to-subscribers conversion used for the subscriber estimate.
	subsPerViewRate = 0.001
)

// weeklyViewTotals buckets dated videos by the ISO calendar week of
// their publish date and returns the summed views per week in
// chronological order, one point per week that has at least one video.
func weeklyViewTotals(videos []models.VideoRecord) []float64 {
	type weekKey struct {
		year, week int
	}

	totals := make(map[weekKey]int64)
	for _, v := range videos {
		if v.PublishedAt == nil {
			continue
		}
		y, w := v.PublishedAt.ISOWeek()
		totals[weekKey{y, w}] += v.Views
	}

	keys := make([]weekKey, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].week < keys[j].week
	})

	series := make([]float64, 0, len(keys))
	for _, k := range keys {
		series = append(series, float64(totals[k]))
	}
	return series
}

// ProjectViews forecasts total views over the next 26 weeks from an
// ordered weekly series. The guards are evaluated in order, first match
// wins:
//
//  1. no weekly points           → 0
//  2. a single week              → that week's views × 26
//  3. ≥2 points                  → least-squares line over week indices,
//     summed over the next 26 indices with negative weeks clipped to 0
//  4. fit failure or sum ≤ 0     → mean of the last min(8, n) weeks × 26
//
// The result is never negative.
func ProjectViews(weekly []float64) float64 {
	switch len(weekly) {
	case 0:
		return 0
	case 1:
		return math.Max(0, weekly[0]*futureWeeks)
	}

	if slope, intercept, ok := linearFit(weekly); ok {
		lastIndex := float64(len(weekly) - 1)
		var sum float64
		for i := 1; i <= futureWeeks; i++ {
			y := intercept + slope*(lastIndex+float64(i))
			if y > 0 {
				sum += y
			}
		}
		if sum > 0 {
			return sum
		}
	}

	window := fallbackWindowWeeks
	if len(weekly) < window {
		window = len(weekly)
	}
	var recent float64
	for _, v := range weekly[len(weekly)-window:] {
		recent += v
	}
	return math.Max(0, recent/float64(window)*futureWeeks)
}

// linearFit computes a first-degree least-squares fit of y against its
// indices. ok is false when the series contains non-finite values or
// the system degenerates.
func linearFit(y []float64) (slope, intercept float64, ok bool) {
	n := float64(len(y))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, false
		}
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	den := n*sumXX - sumX*sumX
	if den == 0 {
		return 0, 0, false
	}
	slope = (n*sumXY - sumX*sumY) / den
	intercept = (sumY - slope*sumX) / n
	if math.IsNaN(slope) || math.IsInf(slope, 0) || math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return 0, 0, false
	}
	return slope, intercept, true
}

// ProjectSubscribers derives the subscriber estimate from the projected
// views; always ≥ 0.
func ProjectSubscribers(projectedViews float64) int64 {
	if projectedViews <= 0 || math.IsNaN(projectedViews) || math.IsInf(projectedViews, 0) {
		return 0
	}
	return int64(math.Round(projectedViews * subsPerViewRate))
}

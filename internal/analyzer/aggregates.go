package analyzer

import (
	"math"
	"sort"
	"time"

	"github.com/yt-metrics/internal/models"
)

const (
	// Videos at or under this duration count as shorts.
	shortsThresholdSeconds = 60
	// Upload-frequency denominators never drop below one day of span.
	minSpanDays = 1
	// Popular-video engagement samples the top 10% by views, minimum 1.
	popularFraction = 0.10
	topTitlesLimit  = 5
)

func isShort(v models.VideoRecord) bool {
	return v.DurationSeconds <= shortsThresholdSeconds
}

func splitLongShorts(videos []models.VideoRecord) (long, shorts []models.VideoRecord) {
	for _, v := range videos {
		if isShort(v) {
			shorts = append(shorts, v)
		} else {
			long = append(long, v)
		}
	}
	return long, shorts
}

func datedTimes(videos []models.VideoRecord) []time.Time {
	var dates []time.Time
	for _, v := range videos {
		if v.PublishedAt != nil {
			dates = append(dates, *v.PublishedAt)
		}
	}
	return dates
}

// uploadsPerWeek computes dated-video count over the weeks spanned by
// the subset's own publish dates. The span is floored at one day, which
// also prevents division by zero for same-day uploads.
func uploadsPerWeek(videos []models.VideoRecord) float64 {
	dates := datedTimes(videos)
	if len(dates) == 0 {
		return 0
	}

	min, max := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}

	days := int(max.Sub(min) / (24 * time.Hour))
	if days < minSpanDays {
		days = minSpanDays
	}
	weeks := float64(days) / 7.0
	return float64(len(dates)) / weeks
}

// avgDurationSeconds is the arithmetic mean duration; 0 for an empty subset.
func avgDurationSeconds(videos []models.VideoRecord) float64 {
	if len(videos) == 0 {
		return 0
	}
	var sum int64
	for _, v := range videos {
		sum += v.DurationSeconds
	}
	return float64(sum) / float64(len(videos))
}

func avgViews(videos []models.VideoRecord) float64 {
	if len(videos) == 0 {
		return 0
	}
	var sum int64
	for _, v := range videos {
		sum += v.Views
	}
	return float64(sum) / float64(len(videos))
}

func avgComments(videos []models.VideoRecord) float64 {
	if len(videos) == 0 {
		return 0
	}
	var sum int64
	for _, v := range videos {
		sum += v.Comments
	}
	return float64(sum) / float64(len(videos))
}

// overallEngagementFraction is (Σlikes + Σcomments) / Σviews;
// 0 when there are no views at all.
func overallEngagementFraction(videos []models.VideoRecord) float64 {
	var views, likes, comments int64
	for _, v := range videos {
		views += v.Views
		likes += v.Likes
		comments += v.Comments
	}
	if views == 0 {
		return 0
	}
	return float64(likes+comments) / float64(views)
}

// popularEngagementPct averages per-video engagement over the top 10%
// (minimum 1) of videos by views, considering only videos that have at
// least one view. Returns a percentage; 0 when no video has views.
func popularEngagementPct(videos []models.VideoRecord) float64 {
	n := int(math.Ceil(popularFraction * float64(len(videos))))
	if n < 1 {
		n = 1
	}

	viewed := make([]models.VideoRecord, 0, len(videos))
	for _, v := range videos {
		if v.Views > 0 {
			viewed = append(viewed, v)
		}
	}
	if len(viewed) == 0 {
		return 0
	}

	sort.SliceStable(viewed, func(i, j int) bool {
		return viewed[i].Views > viewed[j].Views
	})
	if len(viewed) > n {
		viewed = viewed[:n]
	}

	var sum float64
	for _, v := range viewed {
		sum += float64(v.Likes+v.Comments) / float64(v.Views)
	}
	return sum / float64(len(viewed)) * 100
}

// topTitlesByViews returns up-to-limit titles ordered by descending
// views, ties broken by original record order.
func topTitlesByViews(videos []models.VideoRecord, limit int) []string {
	ranked := make([]models.VideoRecord, len(videos))
	copy(ranked, videos)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views > ranked[j].Views
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	titles := make([]string, 0, len(ranked))
	for _, v := range ranked {
		titles = append(titles, v.Title)
	}
	return titles
}

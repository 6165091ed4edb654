package analyzer

import (
	"time"

	"github.com/yt-metrics/internal/models"
)

// Timestamp layouts accepted from upstream data, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NormalizeTimestamp parses a raw publish timestamp and returns it
// shifted to UTC with the offset dropped, so relative ordering across
// records with mixed offsets stays correct. Returns nil when the
// timestamp is empty or unparsable; offset-less inputs are taken as UTC.
func NormalizeTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		u := t.UTC()
		return &u
	}
	return nil
}

// FilterByDateRange returns the records that pass the inclusive range
// filter: publish date ≥ start-of-day(From) and ≤ end-of-day(To), with
// absent bounds skipped. When a range is supplied, records without a
// publish date fail the filter; with no range at all, every record
// passes untouched.
func FilterByDateRange(videos []models.VideoRecord, dr *models.DateRange) []models.VideoRecord {
	if dr == nil || (dr.From == nil && dr.To == nil) {
		return videos
	}

	var from, to time.Time
	if dr.From != nil {
		from = startOfDay(*dr.From)
	}
	if dr.To != nil {
		to = endOfDay(*dr.To)
	}

	filtered := make([]models.VideoRecord, 0, len(videos))
	for _, v := range videos {
		if v.PublishedAt == nil {
			continue
		}
		if dr.From != nil && v.PublishedAt.Before(from) {
			continue
		}
		if dr.To != nil && v.PublishedAt.After(to) {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

package models

import "time"

// VideoRecord holds one video's normalized metadata and statistics as
// consumed by the analyzer. Records are built once per analysis run from
// upstream API data and never mutated afterwards.
type VideoRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// PublishedAt is normalized to UTC with the offset dropped.
	// Nil when the upstream timestamp was missing or unparsable.
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	DurationSeconds int64      `json:"durationSeconds"`
	Views           int64      `json:"views"`
	Likes           int64      `json:"likes"`
	Comments        int64      `json:"comments"`
}

// DateRange restricts an analysis run to videos published between From
// and To, inclusive. Either bound may be nil; a nil range (or a range
// with both bounds nil) disables filtering entirely.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

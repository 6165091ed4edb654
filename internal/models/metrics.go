package models

// ChannelMetrics is the sole output of an analysis run: a flat record of
// per-channel descriptive, engagement, content and predictive metrics.
// Every numeric field is finite, and every field is populated even when
// the underlying sample is empty (zero values, empty slices and maps,
// never a missing key). Subscribers is the one exception to
// zero-coercion: it stays null when the channel hides its count.
type ChannelMetrics struct {
	ChannelID            string `json:"channel_id"`
	ChannelTitle         string `json:"channel_title"`
	Subscribers          *int64 `json:"subscribers"`
	ChannelTotalViews    int64  `json:"channel_total_views"`
	SampleVideosAnalyzed int    `json:"sample_videos_analyzed"`

	AvgUploadsPerWeek       float64 `json:"avg_uploads_per_week"`
	AvgUploadsLongPerWeek   float64 `json:"avg_uploads_long_per_week"`
	AvgUploadsShortsPerWeek float64 `json:"avg_uploads_shorts_per_week"`

	AvgRuntimeLongSeconds   float64 `json:"avg_runtime_long_seconds"`
	AvgRuntimeShortsSeconds float64 `json:"avg_runtime_shorts_seconds"`

	EngagementPctPopularVideos float64 `json:"engagement_pct_popular_videos"`
	EngagementRateOverallPct   float64 `json:"engagement_rate_overall_pct"`
	AvgViewsSample             float64 `json:"avg_views_sample"`

	Top5LongTitles   []string       `json:"top_5_long_titles"`
	Top5ShortsTitles []string       `json:"top_5_shorts_titles"`
	TopTopics        []string       `json:"top_topics"`
	CTACounts        map[string]int `json:"cta_counts"`

	EstViewsNext6Months float64 `json:"est_views_next_6_months"`
	EstSubsNext6Months  int64   `json:"est_subs_next_6_months"`

	QualityScore   float64 `json:"quality_score_0_10"`
	CommunityScore float64 `json:"community_score_0_10"`

	MonetizationInference string `json:"monetization_inference"`
}

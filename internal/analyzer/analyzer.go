// Package analyzer derives a channel's descriptive, engagement, content
// and predictive metrics from a set of per-video records. Each analysis
// run is a pure, synchronous function of its inputs: nothing here
// performs I/O, and invocations for different channels may run in
// parallel as long as each receives its own record set.
package analyzer

import (
	"math"
	"strings"

	"github.com/yt-metrics/internal/models"
)

const (
	monetizationNone     = "None Detected"
	monetizationSponsor  = "Sponsorship Mentions"
	monetizationDetected = "Detected: "
	sponsorCTAKeyword    = "sponsor"
)

// Analyzer runs the metrics derivation pipeline for one channel at a
// time. The zero cost of construction makes it safe to share across
// goroutines; the keyword configuration is immutable after New.
type Analyzer struct {
	keywords KeywordConfig
}

// New returns an Analyzer with the canonical keyword lists.
func New() *Analyzer {
	return &Analyzer{keywords: DefaultKeywordConfig()}
}

// NewWithKeywords returns an Analyzer using the supplied keyword lists.
func NewWithKeywords(kc KeywordConfig) *Analyzer {
	return &Analyzer{keywords: kc}
}

// Analyze derives one ChannelMetrics record from the channel summary,
// the video records and an optional date range. Malformed or missing
// per-field data degrades gracefully: the only "error" shape is an
// empty filtered set, reported as a metrics record of documented zero
// defaults with SampleVideosAnalyzed = 0.
func (a *Analyzer) Analyze(summary models.ChannelSummary, videos []models.VideoRecord, dr *models.DateRange) models.ChannelMetrics {
	filtered := FilterByDateRange(videos, dr)

	m := models.ChannelMetrics{
		ChannelID:             summary.ChannelID,
		ChannelTitle:          summary.Title,
		Subscribers:           summary.Subscribers,
		ChannelTotalViews:     summary.TotalViews,
		SampleVideosAnalyzed:  len(filtered),
		Top5LongTitles:        []string{},
		Top5ShortsTitles:      []string{},
		TopTopics:             []string{},
		CTACounts:             map[string]int{},
		MonetizationInference: monetizationNone,
	}
	if len(filtered) == 0 {
		return m
	}

	long, shorts := splitLongShorts(filtered)

	m.AvgUploadsPerWeek = round2(uploadsPerWeek(filtered))
	m.AvgUploadsLongPerWeek = round2(uploadsPerWeek(long))
	m.AvgUploadsShortsPerWeek = round2(uploadsPerWeek(shorts))

	m.AvgRuntimeLongSeconds = round2(avgDurationSeconds(long))
	m.AvgRuntimeShortsSeconds = round2(avgDurationSeconds(shorts))

	engagementFrac := overallEngagementFraction(filtered)
	m.EngagementRateOverallPct = round2(engagementFrac * 100)
	m.EngagementPctPopularVideos = round2(popularEngagementPct(filtered))
	m.AvgViewsSample = round2(avgViews(filtered))

	m.Top5LongTitles = topTitlesByViews(long, topTitlesLimit)
	m.Top5ShortsTitles = topTitlesByViews(shorts, topTitlesLimit)

	titles := make([]string, len(filtered))
	descriptions := make([]string, len(filtered))
	for i, v := range filtered {
		titles[i] = v.Title
		descriptions[i] = v.Description
	}

	topics := a.keywords.TopTopics(titles)
	m.TopTopics = topics.Topics

	scan := a.keywords.ScanDescriptions(descriptions)
	for _, kc := range topCounts(scan.CTA, topCTALimit) {
		m.CTACounts[kc.Keyword] = kc.Count
	}

	projected := ProjectViews(weeklyViewTotals(filtered))
	m.EstViewsNext6Months = projected
	m.EstSubsNext6Months = ProjectSubscribers(projected)

	m.QualityScore = QualityScore(
		avgDurationSeconds(long), avgDurationSeconds(shorts),
		len(long), len(shorts),
		engagementFrac,
		topics.UniqueTokens, topics.TotalTokens,
	)
	presence := float64(scan.CommunityVideos) / float64(len(filtered))
	m.CommunityScore = CommunityScore(avgComments(filtered), presence)

	m.MonetizationInference = monetizationInference(scan)

	sanitizeMetrics(&m)
	return m
}

// monetizationInference reports the top monetization keywords found in
// descriptions, falls back to the CTA scan's literal "sponsor" keyword,
// and otherwise reports none.
func monetizationInference(scan DescriptionScan) string {
	if top := topCounts(scan.Monetization, topMonetLimit); len(top) > 0 {
		names := make([]string, len(top))
		for i, kc := range top {
			names[i] = kc.Keyword
		}
		return monetizationDetected + strings.Join(names, ", ")
	}
	for _, kc := range scan.CTA {
		if kc.Keyword == sponsorCTAKeyword && kc.Count > 0 {
			return monetizationSponsor
		}
	}
	return monetizationNone
}

// sanitizeMetrics is the single numeric-safety boundary: every float
// output is coerced to a finite value and the estimates stay non-negative.
// Subscribers is deliberately left alone so a hidden count stays null.
func sanitizeMetrics(m *models.ChannelMetrics) {
	m.AvgUploadsPerWeek = safeFloat(m.AvgUploadsPerWeek)
	m.AvgUploadsLongPerWeek = safeFloat(m.AvgUploadsLongPerWeek)
	m.AvgUploadsShortsPerWeek = safeFloat(m.AvgUploadsShortsPerWeek)
	m.AvgRuntimeLongSeconds = safeFloat(m.AvgRuntimeLongSeconds)
	m.AvgRuntimeShortsSeconds = safeFloat(m.AvgRuntimeShortsSeconds)
	m.EngagementPctPopularVideos = safeFloat(m.EngagementPctPopularVideos)
	m.EngagementRateOverallPct = safeFloat(m.EngagementRateOverallPct)
	m.AvgViewsSample = safeFloat(m.AvgViewsSample)
	m.QualityScore = safeFloat(m.QualityScore)
	m.CommunityScore = safeFloat(m.CommunityScore)

	m.EstViewsNext6Months = safeFloat(m.EstViewsNext6Months)
	if m.EstViewsNext6Months < 0 {
		m.EstViewsNext6Months = 0
	}
	if m.EstSubsNext6Months < 0 {
		m.EstSubsNext6Months = 0
	}

	if m.Top5LongTitles == nil {
		m.Top5LongTitles = []string{}
	}
	if m.Top5ShortsTitles == nil {
		m.Top5ShortsTitles = []string{}
	}
	if m.TopTopics == nil {
		m.TopTopics = []string{}
	}
	if m.CTACounts == nil {
		m.CTACounts = map[string]int{}
	}
}

func safeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

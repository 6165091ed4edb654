package analyzer

import "math"

const (
	// Runtime component baselines: 20 minutes for long-form, 30 seconds
	// for shorts-only channels.
	longRuntimeBaselineSeconds   = 1200
	shortsRuntimeBaselineSeconds = 30
	// A 10% engagement rate saturates the engagement component.
	engagementSaturation = 10
	// 50% unique topics saturates the diversity component.
	diversityScale = 2
	// 10 comments per video saturates the comments component.
	commentsBaseline = 10
)

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// QualityScore combines runtime, engagement and topic diversity into a
// 0–10 composite: 10 × (0.4·runtime + 0.4·engagement + 0.2·diversity),
// each component normalized to [0,1] first. Channels with any long-form
// content are judged on long-form runtime; shorts-only channels on
// shorts runtime.
func QualityScore(avgRuntimeLong, avgRuntimeShorts float64, longCount, shortsCount int, engagementFrac float64, uniqueTokens, totalTokens int) float64 {
	var runtime float64
	switch {
	case longCount > 0:
		runtime = clamp01(avgRuntimeLong / longRuntimeBaselineSeconds)
	case shortsCount > 0:
		runtime = clamp01(avgRuntimeShorts / shortsRuntimeBaselineSeconds)
	}

	engagement := clamp01(engagementFrac * engagementSaturation)

	var diversity float64
	if totalTokens > 0 {
		diversity = clamp01(float64(uniqueTokens) / float64(totalTokens) * diversityScale)
	}

	return round2((runtime*0.4 + engagement*0.4 + diversity*0.2) * 10)
}

// CommunityScore combines average comments per video and community
// keyword presence into a 0–10 composite:
// 10 × (0.6·comments + 0.4·presence).
func CommunityScore(avgCommentsPerVideo, presenceFraction float64) float64 {
	comments := clamp01(avgCommentsPerVideo / commentsBaseline)
	presence := clamp01(presenceFraction)
	return round2((comments*0.6 + presence*0.4) * 10)
}

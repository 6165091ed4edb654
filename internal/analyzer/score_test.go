package analyzer

import (
	"math"
	"testing"
)

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name           string
		avgLong        float64
		avgShorts      float64
		longCount      int
		shortsCount    int
		engagementFrac float64
		unique, total  int
		want           float64
	}{
		{
			name: "all zero",
			want: 0,
		},
		{
			// Runtime component saturates at the 20-minute baseline.
			name:      "long runtime at baseline",
			avgLong:   1200,
			longCount: 5,
			want:      4.0,
		},
		{
			name:      "long runtime above baseline clamps",
			avgLong:   9999,
			longCount: 1,
			want:      4.0,
		},
		{
			// With long-form present, shorts runtime is ignored.
			name:        "long runtime wins over shorts",
			avgLong:     600,
			avgShorts:   30,
			longCount:   2,
			shortsCount: 10,
			want:        2.0,
		},
		{
			name:        "shorts-only channel",
			avgShorts:   15,
			shortsCount: 3,
			want:        2.0,
		},
		{
			// 10% engagement saturates that component.
			name:           "engagement saturation",
			engagementFrac: 0.10,
			want:           4.0,
		},
		{
			name:           "half engagement",
			engagementFrac: 0.05,
			want:           2.0,
		},
		{
			// 50% unique tokens saturates diversity.
			name:   "diversity saturation",
			unique: 5,
			total:  10,
			want:   2.0,
		},
		{
			name:   "quarter diversity",
			unique: 1,
			total:  4,
			want:   1.0,
		},
		{
			name:           "everything saturated",
			avgLong:        1800,
			longCount:      1,
			engagementFrac: 0.5,
			unique:         10,
			total:          10,
			want:           10.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QualityScore(tt.avgLong, tt.avgShorts, tt.longCount, tt.shortsCount, tt.engagementFrac, tt.unique, tt.total)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("QualityScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQualityScoreBounds(t *testing.T) {
	extremes := []struct {
		long, shorts   float64
		engagementFrac float64
	}{
		{-100, -100, -5},
		{1e12, 1e12, 1e12},
		{math.NaN(), math.NaN(), math.NaN()},
	}
	for _, e := range extremes {
		got := QualityScore(e.long, e.shorts, 1, 1, e.engagementFrac, 100, 1)
		if got < 0 || got > 10 || math.IsNaN(got) {
			t.Errorf("QualityScore(%v) = %v, out of [0,10]", e, got)
		}
	}
}

func TestCommunityScore(t *testing.T) {
	tests := []struct {
		name        string
		avgComments float64
		presence    float64
		want        float64
	}{
		{"all zero", 0, 0, 0},
		{"comments at baseline", 10, 0, 6.0},
		{"comments above baseline clamp", 500, 0, 6.0},
		{"full presence", 0, 1.0, 4.0},
		{"half and half", 5, 0.5, 5.0},
		{"maximum", 10, 1.0, 10.0},
		{"rounded to two decimals", 3.333, 0, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommunityScore(tt.avgComments, tt.presence)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CommunityScore(%v, %v) = %v, want %v", tt.avgComments, tt.presence, got, tt.want)
			}
		})
	}
}

func TestCommunityScoreBounds(t *testing.T) {
	for _, e := range []float64{-1, 2, math.NaN(), math.Inf(1)} {
		got := CommunityScore(e, e)
		if got < 0 || got > 10 || math.IsNaN(got) {
			t.Errorf("CommunityScore(%v, %v) = %v, out of [0,10]", e, e, got)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

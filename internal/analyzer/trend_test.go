package analyzer

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/yt-metrics/internal/models"
)

func TestWeeklyViewTotalsBuckets(t *testing.T) {
	// Two videos in the same ISO week, one the week after, one undated.
	mon := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // ISO week 2024-W01
	videos := []models.VideoRecord{
		datedVideo("a", mon),
		datedVideo("b", mon.AddDate(0, 0, 3)),
		datedVideo("c", mon.AddDate(0, 0, 7)),
		{ID: "undated", Views: 999},
	}
	videos[0].Views = 100
	videos[1].Views = 50
	videos[2].Views = 25

	got := weeklyViewTotals(videos)
	want := []float64{150, 25}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("weeklyViewTotals = %v, want %v", got, want)
	}
}

func TestWeeklyViewTotalsYearBoundary(t *testing.T) {
	// 2019-12-30 is ISO week 2020-W01; it must sort after 2019-W50.
	videos := []models.VideoRecord{
		datedVideo("new", time.Date(2019, 12, 30, 0, 0, 0, 0, time.UTC)),
		datedVideo("old", time.Date(2019, 12, 10, 0, 0, 0, 0, time.UTC)),
	}
	videos[0].Views = 2
	videos[1].Views = 1

	got := weeklyViewTotals(videos)
	want := []float64{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("weeklyViewTotals across year boundary = %v, want %v", got, want)
	}
}

func TestProjectViews(t *testing.T) {
	tests := []struct {
		name   string
		weekly []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single week", []float64{1000}, 26000},
		// Constant series: slope 0, every projected week equals v.
		{"flat", []float64{500, 500, 500, 500}, 500 * 26},
		// Steep decline: the fitted line is negative everywhere past the
		// data, so the recent-average fallback applies: mean(100, 0) = 50.
		{"declining to fallback", []float64{100, 0}, 50 * 26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectViews(tt.weekly)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("ProjectViews(%v) = %v, want %v", tt.weekly, got, tt.want)
			}
		})
	}
}

func TestProjectViewsGrowingSeries(t *testing.T) {
	// y = 10x: slope 10, intercept 0. Next 26 weeks start at index 4.
	weekly := []float64{0, 10, 20, 30}
	var want float64
	for i := 4; i < 4+26; i++ {
		want += 10 * float64(i)
	}
	got := ProjectViews(weekly)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("ProjectViews growing = %v, want %v", got, want)
	}
}

func TestProjectViewsNeverNegative(t *testing.T) {
	series := [][]float64{
		{0, 0, 0},
		{-5},
		{1000, 1},
	}
	for _, s := range series {
		if got := ProjectViews(s); got < 0 {
			t.Errorf("ProjectViews(%v) = %v, want ≥ 0", s, got)
		}
	}
}

func TestProjectViewsFallbackWindow(t *testing.T) {
	// 12 declining weeks; the fallback averages only the last 8.
	weekly := make([]float64, 12)
	for i := range weekly {
		weekly[i] = float64(110 - i*10) // 110 down to 0
	}
	var recent float64
	for _, v := range weekly[4:] {
		recent += v
	}
	want := recent / 8 * 26

	got := ProjectViews(weekly)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("ProjectViews fallback = %v, want %v", got, want)
	}
}

func TestLinearFit(t *testing.T) {
	slope, intercept, ok := linearFit([]float64{3, 5, 7, 9})
	if !ok {
		t.Fatal("linearFit returned ok=false for a clean series")
	}
	if math.Abs(slope-2) > 1e-9 || math.Abs(intercept-3) > 1e-9 {
		t.Errorf("linearFit = (%v, %v), want (2, 3)", slope, intercept)
	}

	if _, _, ok := linearFit([]float64{1, math.NaN(), 3}); ok {
		t.Error("linearFit accepted a NaN point")
	}
	if _, _, ok := linearFit([]float64{42}); ok {
		t.Error("linearFit accepted a single point")
	}
}

func TestProjectSubscribers(t *testing.T) {
	tests := []struct {
		views float64
		want  int64
	}{
		{0, 0},
		{-100, 0},
		{26000, 26},
		{1499, 1}, // 1.499 rounds to 1
		{1500, 2}, // 1.5 rounds half away from zero
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := ProjectSubscribers(tt.views); got != tt.want {
			t.Errorf("ProjectSubscribers(%v) = %d, want %d", tt.views, got, tt.want)
		}
	}
}

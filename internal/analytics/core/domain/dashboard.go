package domain

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Filter struct {
	Platform string // "all" or an exact platform name
	Search   string
}

// Matches: platform selector is "all" or equal to the row platform, and the
// row platform contains the search term case-insensitively.
func (f Filter) Matches(r Row) bool {
	platform := f.Platform
	if platform == "" {
		platform = PlatformAll
	}
	if platform != PlatformAll && r.Platform != platform {
		return false
	}
	return r.PlatformContains(f.Search)
}

// FilterRows returns the matching rows in source order. The input is not modified.
func FilterRows(rows []Row, f Filter) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

type Summary struct {
	TotalFollowers    int64
	AverageGrowth     float64
	AverageEngagement float64
	TotalImpressions  int64
}

type GrowthPoint struct {
	Date      string
	Followers int64
	Platform  string
}

type PlatformStat struct {
	Platform   string
	Engagement float64 // mean
	Reach      int64   // sum
	Posts      int64   // sum
	Rows       int
}

type Dashboard struct {
	Filter    Filter
	Rows      []Row
	Summary   Summary
	Growth    []GrowthPoint
	Platforms []PlatformStat
}

func Summarize(rows []Row) Summary {
	var s Summary
	if len(rows) == 0 {
		return s
	}

	var growth, engagement float64
	for _, r := range rows {
		s.TotalFollowers += r.Followers
		s.TotalImpressions += r.Impressions
		growth += r.Growth
		engagement += r.Engagement
	}
	s.AverageGrowth = growth / float64(len(rows))
	s.AverageEngagement = engagement / float64(len(rows))
	return s
}

func GrowthSeries(rows []Row) []GrowthPoint {
	out := make([]GrowthPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, GrowthPoint{Date: r.Date, Followers: r.Followers, Platform: r.Platform})
	}
	return out
}

// PlatformStats groups rows by platform in order of first appearance.
// Every group has at least one row, so the engagement mean never divides by zero.
func PlatformStats(rows []Row) []PlatformStat {
	index := map[string]int{}
	var stats []PlatformStat
	engagementSum := []float64{}

	for _, r := range rows {
		i, ok := index[r.Platform]
		if !ok {
			i = len(stats)
			index[r.Platform] = i
			stats = append(stats, PlatformStat{Platform: r.Platform})
			engagementSum = append(engagementSum, 0)
		}
		stats[i].Reach += r.Reach
		stats[i].Posts += r.Posts
		stats[i].Rows++
		engagementSum[i] += r.Engagement
	}

	for i := range stats {
		stats[i].Engagement = engagementSum[i] / float64(stats[i].Rows)
	}
	if stats == nil {
		stats = []PlatformStat{}
	}
	return stats
}

// BuildDashboard filters rows and derives every aggregate from the filtered set.
func BuildDashboard(rows []Row, f Filter) Dashboard {
	if f.Platform == "" {
		f.Platform = PlatformAll
	}
	filtered := FilterRows(rows, f)
	return Dashboard{
		Filter:    f,
		Rows:      filtered,
		Summary:   Summarize(filtered),
		Growth:    GrowthSeries(filtered),
		Platforms: PlatformStats(filtered),
	}
}

// FormatPercent renders a percentage with one decimal, e.g. "4.5%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatCount renders an integer with thousands separators, e.g. "12,500".
func FormatCount(v int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", v)
}

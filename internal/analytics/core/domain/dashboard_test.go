package domain_test

import (
	"testing"

	"social-analytics-dashboard/internal/analytics/core/domain"

	"github.com/google/go-cmp/cmp"
)

func sampleRows() []domain.Row {
	return []domain.Row{
		{Date: "2025-01-01", Platform: "Instagram", Followers: 1000, Impressions: 5000, Reach: 3000, Posts: 4, Engagement: 4.5, Growth: 2},
		{Date: "2025-01-01", Platform: "LinkedIn", Followers: 500, Impressions: 2000, Reach: 1200, Posts: 2, Engagement: 3.0, Growth: 1},
		{Date: "2025-01-02", Platform: "Instagram", Followers: 1100, Impressions: 5500, Reach: 3300, Posts: 3, Engagement: 5.5, Growth: 3},
		{Date: "2025-01-02", Platform: "X", Followers: 300, Impressions: 900, Reach: 700, Posts: 6, Engagement: 1.5, Growth: 0.5},
	}
}

func TestFilterRows_AllAndEmptySearchIsIdentity(t *testing.T) {
	rows := sampleRows()

	got := domain.FilterRows(rows, domain.Filter{Platform: "all", Search: ""})

	if diff := cmp.Diff(rows, got); diff != "" {
		t.Fatalf("expected identity (-want +got):\n%s", diff)
	}
}

func TestFilterRows_ByPlatform(t *testing.T) {
	got := domain.FilterRows(sampleRows(), domain.Filter{Platform: "Instagram"})

	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	for _, r := range got {
		if r.Platform != "Instagram" {
			t.Fatalf("unexpected platform %s", r.Platform)
		}
	}
}

func TestFilterRows_PlatformMatchIsExact(t *testing.T) {
	got := domain.FilterRows(sampleRows(), domain.Filter{Platform: "instagram"})
	if len(got) != 0 {
		t.Fatalf("expected no rows for a lower-case selector, got %d", len(got))
	}
}

func TestFilterRows_SearchIsCaseInsensitiveContains(t *testing.T) {
	got := domain.FilterRows(sampleRows(), domain.Filter{Platform: "all", Search: "LINK"})

	if len(got) != 1 || got[0].Platform != "LinkedIn" {
		t.Fatalf("expected only LinkedIn, got %+v", got)
	}
}

func TestFilterRows_PlatformAndSearchBothApply(t *testing.T) {
	got := domain.FilterRows(sampleRows(), domain.Filter{Platform: "Instagram", Search: "tube"})
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}

func TestFilterRows_DoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	before := sampleRows()

	_ = domain.FilterRows(rows, domain.Filter{Platform: "X"})

	if diff := cmp.Diff(before, rows); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestSummarize(t *testing.T) {
	s := domain.Summarize(sampleRows())

	if s.TotalFollowers != 2900 {
		t.Fatalf("expected total followers 2900, got %d", s.TotalFollowers)
	}
	if s.TotalImpressions != 13400 {
		t.Fatalf("expected total impressions 13400, got %d", s.TotalImpressions)
	}
	if s.AverageEngagement != 3.625 {
		t.Fatalf("expected average engagement 3.625, got %v", s.AverageEngagement)
	}
	if s.AverageGrowth != 1.625 {
		t.Fatalf("expected average growth 1.625, got %v", s.AverageGrowth)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if s := domain.Summarize(nil); s != (domain.Summary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestPlatformStats_FirstAppearanceOrder(t *testing.T) {
	got := domain.PlatformStats(sampleRows())
	want := []domain.PlatformStat{
		{Platform: "Instagram", Engagement: 5.0, Reach: 6300, Posts: 7, Rows: 2},
		{Platform: "LinkedIn", Engagement: 3.0, Reach: 1200, Posts: 2, Rows: 1},
		{Platform: "X", Engagement: 1.5, Reach: 700, Posts: 6, Rows: 1},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestGrowthSeries_PreservesRowOrder(t *testing.T) {
	got := domain.GrowthSeries(sampleRows())

	want := []domain.GrowthPoint{
		{Date: "2025-01-01", Followers: 1000, Platform: "Instagram"},
		{Date: "2025-01-01", Followers: 500, Platform: "LinkedIn"},
		{Date: "2025-01-02", Followers: 1100, Platform: "Instagram"},
		{Date: "2025-01-02", Followers: 300, Platform: "X"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("series mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDashboard_ExampleFilter(t *testing.T) {
	rows := domain.ParseCSV("Date,Platform,Followers,Engagement (%)\n2025-01-01,Instagram,1000,4.5\n2025-01-02,LinkedIn,abc,")

	d := domain.BuildDashboard(rows, domain.Filter{Platform: "Instagram"})

	if len(d.Rows) != 1 || d.Rows[0].Date != "2025-01-01" {
		t.Fatalf("expected only the first row, got %+v", d.Rows)
	}
	if d.Summary.TotalFollowers != 1000 {
		t.Fatalf("expected total followers 1000, got %d", d.Summary.TotalFollowers)
	}
}

func TestBuildDashboard_IsIdempotent(t *testing.T) {
	rows := sampleRows()
	f := domain.Filter{Platform: "all", Search: "a"}

	first := domain.BuildDashboard(rows, f)
	second := domain.BuildDashboard(rows, f)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("recomputation differs (-first +second):\n%s", diff)
	}
}

func TestBuildDashboard_DefaultsPlatformToAll(t *testing.T) {
	d := domain.BuildDashboard(sampleRows(), domain.Filter{})

	if d.Filter.Platform != domain.PlatformAll {
		t.Fatalf("expected platform %q, got %q", domain.PlatformAll, d.Filter.Platform)
	}
	if len(d.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(d.Rows))
	}
}

func TestBuildDashboard_NoMatches(t *testing.T) {
	d := domain.BuildDashboard(sampleRows(), domain.Filter{Platform: "YouTube"})

	if len(d.Rows) != 0 || len(d.Platforms) != 0 || len(d.Growth) != 0 {
		t.Fatalf("expected empty dashboard, got %+v", d)
	}
	if d.Summary != (domain.Summary{}) {
		t.Fatalf("expected zero summary, got %+v", d.Summary)
	}
}

func TestFormatting(t *testing.T) {
	if got := domain.FormatPercent(3.625); got != "3.6%" {
		t.Fatalf("FormatPercent = %q", got)
	}
	if got := domain.FormatPercent(0); got != "0.0%" {
		t.Fatalf("FormatPercent(0) = %q", got)
	}
	if got := domain.FormatCount(1234567); got != "1,234,567" {
		t.Fatalf("FormatCount = %q", got)
	}
	if got := domain.FormatCount(999); got != "999" {
		t.Fatalf("FormatCount(999) = %q", got)
	}
}

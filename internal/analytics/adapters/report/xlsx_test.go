package report_test

import (
	"bytes"
	"testing"

	"social-analytics-dashboard/internal/analytics/adapters/report"
	"social-analytics-dashboard/internal/analytics/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	rows := []domain.Row{
		{Date: "2025-01-01", Platform: "Instagram", Followers: 1000, Impressions: 5000, Reach: 3000, Posts: 4, Engagement: 4.5, Growth: 2},
		{Date: "2025-01-02", Platform: "LinkedIn", Followers: 500, Impressions: 2000, Reach: 1200, Posts: 2, Engagement: 3, Growth: 1},
	}
	d := domain.BuildDashboard(rows, domain.Filter{Platform: domain.PlatformAll, Search: "in"})

	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, &d))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{report.AnalyticsSheet, report.SummarySheet}, f.GetSheetList())

	table, err := f.GetRows(report.AnalyticsSheet)
	require.NoError(t, err)
	require.Len(t, table, 3)
	assert.Equal(t, []string{"Date", "Platform", "Followers", "Impressions", "Reach", "Posts", "Engagement %", "Growth %"}, table[0])
	assert.Equal(t, []string{"2025-01-01", "Instagram", "1000", "5000", "3000", "4", "4.5", "2"}, table[1])
	assert.Equal(t, "LinkedIn", table[2][1])

	total, err := f.GetCellValue(report.SummarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "1500", total)

	search, err := f.GetCellValue(report.SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "in", search)

	platform, err := f.GetCellValue(report.SummarySheet, "A9")
	require.NoError(t, err)
	assert.Equal(t, "Instagram", platform)
}

func TestWriteXLSX_EmptyDashboard(t *testing.T) {
	d := domain.BuildDashboard(nil, domain.Filter{})

	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, &d))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	table, err := f.GetRows(report.AnalyticsSheet)
	require.NoError(t, err)
	assert.Len(t, table, 1)
}

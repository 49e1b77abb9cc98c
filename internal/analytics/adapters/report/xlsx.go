package report

import (
	"fmt"
	"io"

	"social-analytics-dashboard/internal/analytics/core/domain"

	"github.com/xuri/excelize/v2"
)

const (
	AnalyticsSheet = "Analytics"
	SummarySheet   = "Summary"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var tableHeader = []any{"Date", "Platform", "Followers", "Impressions", "Reach", "Posts", "Engagement %", "Growth %"}

// WriteXLSX writes the detail table and the aggregates of d as a workbook.
func WriteXLSX(w io.Writer, d *domain.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", AnalyticsSheet); err != nil {
		return err
	}
	if err := writeTable(f, d.Rows); err != nil {
		return fmt.Errorf("analytics sheet: %w", err)
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, d); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}

	_, err := f.WriteTo(w)
	return err
}

func writeTable(f *excelize.File, rows []domain.Row) error {
	if err := f.SetSheetRow(AnalyticsSheet, "A1", &tableHeader); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{r.Date, r.Platform, r.Followers, r.Impressions, r.Reach, r.Posts, r.Engagement, r.Growth}
		if err := f.SetSheetRow(AnalyticsSheet, cell, &values); err != nil {
			return err
		}
	}
	return f.SetPanes(AnalyticsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeSummary(f *excelize.File, d *domain.Dashboard) error {
	platform := d.Filter.Platform
	if platform == "" {
		platform = domain.PlatformAll
	}

	kpis := [][]any{
		{"Platform filter", platform},
		{"Search", d.Filter.Search},
		{"Total Followers", d.Summary.TotalFollowers},
		{"Average Growth %", d.Summary.AverageGrowth},
		{"Engagement Rate %", d.Summary.AverageEngagement},
		{"Total Impressions", d.Summary.TotalImpressions},
	}
	for i, kv := range kpis {
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+1), &kv); err != nil {
			return err
		}
	}

	start := len(kpis) + 2
	header := []any{"Platform", "Engagement %", "Reach", "Posts"}
	if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", start), &header); err != nil {
		return err
	}
	for i, s := range d.Platforms {
		values := []any{s.Platform, s.Engagement, s.Reach, s.Posts}
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", start+i+1), &values); err != nil {
			return err
		}
	}
	return nil
}

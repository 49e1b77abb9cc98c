package fiber

import "social-analytics-dashboard/internal/analytics/core/domain"

// AnalyticsResponse is the parsed sheet.
type AnalyticsResponse struct {
	Data []domain.Row `json:"data" swaggertype:"array,object"`
}

type SummaryResponse struct {
	TotalFollowers    int64   `json:"total_followers"`
	AverageGrowth     float64 `json:"average_growth"`
	AverageEngagement float64 `json:"average_engagement"`
	TotalImpressions  int64   `json:"total_impressions"`

	Display SummaryDisplay `json:"display"`
}

// SummaryDisplay holds the KPI card strings.
type SummaryDisplay struct {
	TotalFollowers    string `json:"total_followers" example:"12,500"`
	AverageGrowth     string `json:"average_growth" example:"2.3%"`
	AverageEngagement string `json:"average_engagement" example:"4.5%"`
	TotalImpressions  string `json:"total_impressions" example:"98,000"`
}

type GrowthPointResponse struct {
	Date      string `json:"date"`
	Followers int64  `json:"followers"`
	Platform  string `json:"platform"`
}

type PlatformStatResponse struct {
	Platform   string  `json:"platform"`
	Engagement float64 `json:"engagement"`
	Reach      int64   `json:"reach"`
	Posts      int64   `json:"posts"`
}

type DashboardResponse struct {
	Platform  string                 `json:"platform"`
	Search    string                 `json:"search"`
	Summary   SummaryResponse        `json:"summary"`
	Growth    []GrowthPointResponse  `json:"growth"`
	Platforms []PlatformStatResponse `json:"platforms"`
	Rows      []domain.Row           `json:"rows" swaggertype:"array,object"`

	// Charts maps a chart name to a PNG data URI, "" when there is nothing to draw.
	Charts map[string]string `json:"charts"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Failed to fetch CSV: Not Found"`
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Platform: d.Filter.Platform,
		Search:   d.Filter.Search,
		Summary: SummaryResponse{
			TotalFollowers:    d.Summary.TotalFollowers,
			AverageGrowth:     d.Summary.AverageGrowth,
			AverageEngagement: d.Summary.AverageEngagement,
			TotalImpressions:  d.Summary.TotalImpressions,
			Display: SummaryDisplay{
				TotalFollowers:    domain.FormatCount(d.Summary.TotalFollowers),
				AverageGrowth:     domain.FormatPercent(d.Summary.AverageGrowth),
				AverageEngagement: domain.FormatPercent(d.Summary.AverageEngagement),
				TotalImpressions:  domain.FormatCount(d.Summary.TotalImpressions),
			},
		},
		Growth:    make([]GrowthPointResponse, 0, len(d.Growth)),
		Platforms: make([]PlatformStatResponse, 0, len(d.Platforms)),
		Rows:      d.Rows,
	}

	for _, p := range d.Growth {
		resp.Growth = append(resp.Growth, GrowthPointResponse{
			Date:      p.Date,
			Followers: p.Followers,
			Platform:  p.Platform,
		})
	}
	for _, s := range d.Platforms {
		resp.Platforms = append(resp.Platforms, PlatformStatResponse{
			Platform:   s.Platform,
			Engagement: s.Engagement,
			Reach:      s.Reach,
			Posts:      s.Posts,
		})
	}
	if resp.Rows == nil {
		resp.Rows = []domain.Row{}
	}

	return resp
}

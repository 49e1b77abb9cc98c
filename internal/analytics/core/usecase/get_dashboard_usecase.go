package usecase

import (
	"context"
	"strings"

	"social-analytics-dashboard/internal/analytics/core/domain"
)

type RowFetcher interface {
	Execute(ctx context.Context) ([]domain.Row, error)
}

type GetDashboardInput struct {
	Platform string // "" or "all" selects every platform
	Search   string
}

type GetDashboardUseCase struct {
	fetcher RowFetcher
}

func NewGetDashboardUseCase(fetcher RowFetcher) *GetDashboardUseCase {
	return &GetDashboardUseCase{fetcher: fetcher}
}

// Execute fetches the current rows and derives the filtered dashboard.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in GetDashboardInput) (*domain.Dashboard, error) {
	platform := strings.TrimSpace(in.Platform)
	if platform == "" || strings.EqualFold(platform, domain.PlatformAll) {
		platform = domain.PlatformAll
	}

	rows, err := uc.fetcher.Execute(ctx)
	if err != nil {
		return nil, err
	}

	d := domain.BuildDashboard(rows, domain.Filter{Platform: platform, Search: in.Search})
	return &d, nil
}

package usecase

import (
	"context"
	"errors"

	"social-analytics-dashboard/internal/analytics/core/domain"
	"social-analytics-dashboard/internal/analytics/core/ports"

	"go.uber.org/zap"
)

var ErrNoSource = errors.New("no sheet source configured")

type FetchAnalyticsUseCase struct {
	source ports.SheetSourcePort
	logger *zap.Logger
}

func NewFetchAnalyticsUseCase(source ports.SheetSourcePort, logger *zap.Logger) *FetchAnalyticsUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FetchAnalyticsUseCase{source: source, logger: logger}
}

// Execute fetches the sheet export and parses it into rows. It does not retry;
// the caller polls again on failure.
func (uc *FetchAnalyticsUseCase) Execute(ctx context.Context) ([]domain.Row, error) {
	if uc.source == nil {
		return nil, ErrNoSource
	}

	uc.logger.Debug("fetching CSV")
	text, err := uc.source.FetchCSV(ctx)
	if err != nil {
		uc.logger.Error("fetch CSV failed", zap.Error(err))
		return nil, err
	}
	uc.logger.Debug("CSV fetched", zap.Int("bytes", len(text)))

	rows := domain.ParseCSV(text)
	uc.logger.Info("parsed rows", zap.Int("rows", len(rows)))

	return rows, nil
}

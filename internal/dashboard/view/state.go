package view

import (
	"context"
	"time"

	"social-analytics-dashboard/internal/analytics/core/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	FailureTitle       = "Error"
	FailureDescription = "Failed to fetch analytics data. Retrying..."
)

type RowSource interface {
	FetchRows(ctx context.Context) ([]domain.Row, error)
}

// RowSourceFunc adapts a function, such as a use case's Execute, to RowSource.
type RowSourceFunc func(ctx context.Context) ([]domain.Row, error)

func (f RowSourceFunc) FetchRows(ctx context.Context) ([]domain.Row, error) {
	return f(ctx)
}

type Notification struct {
	CycleID     string
	Title       string
	Description string
	Err         error
}

type Notifier interface {
	Notify(n Notification)
}

// State is the view record of one dashboard: the current rows, the active
// filter and the loading flag. It is owned by the poll loop and is not safe
// for concurrent use.
type State struct {
	source   RowSource
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time

	rows      []domain.Row
	filter    domain.Filter
	loading   bool
	updatedAt time.Time
}

func NewState(source RowSource, notifier Notifier, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{
		source:   source,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		rows:     []domain.Row{},
		filter:   domain.Filter{Platform: domain.PlatformAll},
		loading:  true,
	}
}

func (s *State) SetPlatform(platform string) {
	if platform == "" {
		platform = domain.PlatformAll
	}
	s.filter.Platform = platform
}

func (s *State) SetSearch(term string) {
	s.filter.Search = term
}

// Refresh runs one poll cycle. On success the rows are replaced wholesale; on
// failure the previous rows stay and exactly one notification is emitted.
func (s *State) Refresh(ctx context.Context) error {
	cycle := uuid.NewString()

	rows, err := s.source.FetchRows(ctx)
	if err != nil {
		s.logger.Warn("poll cycle failed",
			zap.String("cycle", cycle),
			zap.Int("kept_rows", len(s.rows)),
			zap.Error(err))
		if s.notifier != nil {
			s.notifier.Notify(Notification{
				CycleID:     cycle,
				Title:       FailureTitle,
				Description: FailureDescription,
				Err:         err,
			})
		}
		return err
	}

	if rows == nil {
		rows = []domain.Row{}
	}
	s.rows = rows
	s.loading = false
	s.updatedAt = s.now()

	s.logger.Debug("poll cycle done", zap.String("cycle", cycle), zap.Int("rows", len(rows)))
	return nil
}

func (s *State) Loading() bool {
	return s.loading
}

func (s *State) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *State) Filter() domain.Filter {
	return s.filter
}

// Rows returns a copy of the current unfiltered rows.
func (s *State) Rows() []domain.Row {
	out := make([]domain.Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Dashboard derives the aggregates for the current rows and filter.
func (s *State) Dashboard() domain.Dashboard {
	return domain.BuildDashboard(s.rows, s.filter)
}

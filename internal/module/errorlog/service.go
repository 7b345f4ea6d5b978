package errorlog

import (
	"context"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/resource"
)

// Service extends the generic error log service with atomic batch ingest and
// a per-level stats breakdown. Error logs are immutable events: they are
// created, listed, and eventually deleted, never updated.
type Service struct {
	*resource.Service[domain.ErrorLog]
}

// NewService creates an error log Service.
func NewService(base *resource.Service[domain.ErrorLog]) *Service {
	return &Service{Service: base}
}

// CreateBatch inserts all entries in one transaction. Either every entry is
// persisted or none are.
func (s *Service) CreateBatch(ctx context.Context, entries []domain.ErrorLog) error {
	return s.Repo().CreateMany(ctx, entries)
}

// LevelStats returns the total count and the per-level breakdown.
func (s *Service) LevelStats(ctx context.Context) (*LevelStats, error) {
	stats, err := s.Repo().Stats(ctx)
	if err != nil {
		return nil, err
	}
	byLevel, err := s.Repo().CountBy(ctx, "level")
	if err != nil {
		return nil, err
	}
	return &LevelStats{
		Total:   stats.Total,
		ByLevel: byLevel,
	}, nil
}

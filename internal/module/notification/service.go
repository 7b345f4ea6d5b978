package notification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/resource"
)

// Service extends the generic notification service with token assignment and
// the mark-read transition.
type Service struct {
	*resource.Service[domain.Notification]
}

// NewService creates a notification Service.
func NewService(base *resource.Service[domain.Notification]) *Service {
	return &Service{Service: base}
}

// Create assigns an opaque dedupe token before inserting.
func (s *Service) Create(ctx context.Context, e *domain.Notification) error {
	if e.Token == "" {
		e.Token = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = domain.NotificationPending
	}
	return s.Service.Create(ctx, e)
}

// MarkRead stamps the notification's read time. Marking an already-read
// notification is a no-op that returns the record unchanged.
func (s *Service) MarkRead(ctx context.Context, id uint) (*domain.Notification, error) {
	entity, err := s.Repo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity.ReadAt != nil {
		return entity, nil
	}

	now := time.Now().UTC()
	entity.ReadAt = &now
	if err := s.Repo().Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

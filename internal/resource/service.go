package resource

import (
	"context"
	"fmt"
	"strings"

	"github.com/aegisx/platform/internal/domain"
)

// CRUDService is the business-logic contract consumed by the generic
// handler. Service implements it; modules may wrap Service to layer
// resource-specific rules on individual methods.
type CRUDService[T any] interface {
	List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[T], error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id uint, apply func(*T)) (*T, error)
	Delete(ctx context.Context, id uint) error
	DeleteCheck(ctx context.Context, id uint) (*domain.DeleteGuard, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// Service is the generic orchestration layer over a Repository. Most
// resources need nothing beyond it. It never talks to the HTTP layer; every
// method either returns a domain value or fails with a taxonomy error.
type Service[T any] struct {
	repo *Repository[T]
}

// NewService creates a Service over the given repository.
func NewService[T any](repo *Repository[T]) *Service[T] {
	return &Service[T]{repo: repo}
}

// Repo exposes the underlying repository for modules that wrap the service.
func (s *Service[T]) Repo() *Repository[T] { return s.repo }

// List returns one page of records. Pagination defaults and clamping happen
// at the parse boundary; the query arrives ready to apply.
func (s *Service[T]) List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[T], error) {
	return s.repo.List(ctx, q)
}

// Get retrieves a record by ID.
func (s *Service[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new record.
func (s *Service[T]) Create(ctx context.Context, entity *T) error {
	return s.repo.Create(ctx, entity)
}

// Update loads the existing record, applies the changes, and persists them.
func (s *Service[T]) Update(ctx context.Context, id uint, apply func(*T)) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(entity)

	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Delete removes a record after the reference guard passes. A blocked
// delete fails with DELETE_BLOCKED carrying the guard result as details.
func (s *Service[T]) Delete(ctx context.Context, id uint) error {
	guard, err := s.repo.CanBeDeleted(ctx, id)
	if err != nil {
		return err
	}
	if !guard.CanDelete {
		return domain.NewAppErrorWithDetails(
			domain.CodeDeleteBlocked,
			blockedMessage(s.repo.Spec().Name, guard),
			guard,
		)
	}
	return s.repo.Delete(ctx, id)
}

// DeleteCheck runs the reference guard without deleting.
func (s *Service[T]) DeleteCheck(ctx context.Context, id uint) (*domain.DeleteGuard, error) {
	return s.repo.CanBeDeleted(ctx, id)
}

// Stats returns the resource's aggregate counts.
func (s *Service[T]) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}

// blockedMessage summarizes the blocking references for the error message,
// e.g. "cannot delete companies: referenced by 1 purchase_orders".
func blockedMessage(resource string, guard *domain.DeleteGuard) string {
	refs := make([]string, 0, len(guard.BlockedBy))
	for _, ref := range guard.BlockedBy {
		if ref.Cascade {
			continue
		}
		refs = append(refs, fmt.Sprintf("%d %s", ref.Count, ref.Table))
	}
	return fmt.Sprintf("cannot delete %s: referenced by %s", resource, strings.Join(refs, ", "))
}

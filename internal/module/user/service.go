package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/resource"
)

// Service extends the generic user service with password hashing and email
// lookup. Create and Update receive the plaintext password in PasswordHash
// and replace it with a bcrypt hash before persisting.
type Service struct {
	*resource.Service[domain.User]
}

// NewService creates a user Service.
func NewService(base *resource.Service[domain.User]) *Service {
	return &Service{Service: base}
}

// Create hashes the password before inserting.
func (s *Service) Create(ctx context.Context, e *domain.User) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(e.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}
	e.PasswordHash = string(hash)
	if e.Role == "" {
		e.Role = domain.RoleUser
	}
	return s.Service.Create(ctx, e)
}

// Update applies the changes and rehashes the password when it changed. The
// update DTO writes the plaintext into PasswordHash, so a changed value
// means a new password was supplied.
func (s *Service) Update(ctx context.Context, id uint, apply func(*domain.User)) (*domain.User, error) {
	entity, err := s.Repo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldHash := entity.PasswordHash
	apply(entity)

	if entity.PasswordHash != oldHash {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(entity.PasswordHash), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", hashErr)
		}
		entity.PasswordHash = string(hash)
	}

	if err := s.Repo().Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// GetByEmail retrieves a user by email address.
func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var entity domain.User
	err := s.Repo().DB().WithContext(ctx).Where("email = ?", email).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewAppError(domain.CodeInternal, "database error", err)
	}
	return &entity, nil
}

// Store is the persistence adapter consumed by the auth flow. Its Create
// bypasses the hashing service because registration hashes the password
// itself.
type Store struct {
	svc *Service
}

// NewStore creates a Store over the given service.
func NewStore(svc *Service) *Store {
	return &Store{svc: svc}
}

// GetByEmail retrieves a user by email address.
func (s *Store) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.svc.GetByEmail(ctx, email)
}

// Create inserts a user whose PasswordHash is already a bcrypt hash.
func (s *Store) Create(ctx context.Context, user *domain.User) error {
	return s.svc.Repo().Create(ctx, user)
}

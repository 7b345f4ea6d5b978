package location

import (
	"context"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/resource"
)

// CompanyFinder resolves a company by ID. It is satisfied by the companies
// service and exists so this package does not depend on the company module.
type CompanyFinder interface {
	Get(ctx context.Context, id uint) (*domain.Company, error)
}

// Service layers the company-reference check over the generic location
// service: a location never points at a company that does not exist.
type Service struct {
	*resource.Service[domain.Location]
	companies CompanyFinder
}

// NewService creates a location Service.
func NewService(base *resource.Service[domain.Location], companies CompanyFinder) *Service {
	return &Service{Service: base, companies: companies}
}

// Create verifies the company reference before inserting.
func (s *Service) Create(ctx context.Context, e *domain.Location) error {
	if err := s.checkCompany(ctx, e.CompanyID); err != nil {
		return err
	}
	return s.Service.Create(ctx, e)
}

// Update applies the changes and verifies the resulting company reference
// before persisting.
func (s *Service) Update(ctx context.Context, id uint, apply func(*domain.Location)) (*domain.Location, error) {
	entity, err := s.Repo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(entity)

	if err := s.checkCompany(ctx, entity.CompanyID); err != nil {
		return nil, err
	}
	if err := s.Repo().Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) checkCompany(ctx context.Context, companyID uint) error {
	if companyID == 0 {
		return domain.NewAppError(domain.CodeValidation, "company_id is required", nil)
	}
	if _, err := s.companies.Get(ctx, companyID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "company_id does not reference an existing company", nil)
		}
		return err
	}
	return nil
}

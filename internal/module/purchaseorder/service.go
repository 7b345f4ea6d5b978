package purchaseorder

import (
	"context"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/resource"
)

// CompanyFinder resolves a company by ID, satisfied by the companies service.
type CompanyFinder interface {
	Get(ctx context.Context, id uint) (*domain.Company, error)
}

// LocationFinder resolves a location by ID, satisfied by the locations service.
type LocationFinder interface {
	Get(ctx context.Context, id uint) (*domain.Location, error)
}

// validStatuses are the accepted order lifecycle states.
var validStatuses = map[string]bool{
	domain.OrderStatusDraft:     true,
	domain.OrderStatusSubmitted: true,
	domain.OrderStatusApproved:  true,
	domain.OrderStatusReceived:  true,
	domain.OrderStatusCancelled: true,
}

// Service layers reference and status validation over the generic purchase
// order service: vendor and location must exist, and the status must be one
// of the known lifecycle states.
type Service struct {
	*resource.Service[domain.PurchaseOrder]
	companies CompanyFinder
	locations LocationFinder
}

// NewService creates a purchase order Service.
func NewService(base *resource.Service[domain.PurchaseOrder], companies CompanyFinder, locations LocationFinder) *Service {
	return &Service{Service: base, companies: companies, locations: locations}
}

// Create validates references and status before inserting.
func (s *Service) Create(ctx context.Context, e *domain.PurchaseOrder) error {
	if err := s.validate(ctx, e); err != nil {
		return err
	}
	return s.Service.Create(ctx, e)
}

// Update applies the changes and validates the resulting record before
// persisting.
func (s *Service) Update(ctx context.Context, id uint, apply func(*domain.PurchaseOrder)) (*domain.PurchaseOrder, error) {
	entity, err := s.Repo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(entity)

	if err := s.validate(ctx, entity); err != nil {
		return nil, err
	}
	if err := s.Repo().Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) validate(ctx context.Context, e *domain.PurchaseOrder) error {
	if !validStatuses[e.Status] {
		return domain.NewAppError(domain.CodeValidation, "status must be one of draft, submitted, approved, received, cancelled", nil)
	}
	if e.VendorID == 0 {
		return domain.NewAppError(domain.CodeValidation, "vendor_id is required", nil)
	}
	if _, err := s.companies.Get(ctx, e.VendorID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "vendor_id does not reference an existing company", nil)
		}
		return err
	}
	if e.LocationID == 0 {
		return domain.NewAppError(domain.CodeValidation, "location_id is required", nil)
	}
	if _, err := s.locations.Get(ctx, e.LocationID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "location_id does not reference an existing location", nil)
		}
		return err
	}
	return nil
}

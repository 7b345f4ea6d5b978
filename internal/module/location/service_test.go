package location

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/resource"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Company{}, &domain.Location{}, &domain.PurchaseOrder{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	companies := resource.NewService(resource.NewRepository[domain.Company](db, resource.Spec{
		Name: "companies", Table: "companies",
	}))
	svc := NewService(resource.NewService(resource.NewRepository[domain.Location](db, spec)), companies)
	return svc, db
}

func seedCompany(t *testing.T, db *gorm.DB) domain.Company {
	t.Helper()
	c := domain.Company{Name: "Acme"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return c
}

func TestCreate_ValidCompany(t *testing.T) {
	svc, db := setupService(t)
	c := seedCompany(t, db)

	loc := domain.Location{Name: "HQ", CompanyID: c.ID}
	if err := svc.Create(context.Background(), &loc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if loc.ID == 0 {
		t.Error("expected non-zero id")
	}
}

func TestCreate_MissingCompanyRejected(t *testing.T) {
	svc, _ := setupService(t)

	loc := domain.Location{Name: "Orphan", CompanyID: 999}
	err := svc.Create(context.Background(), &loc)
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreate_ZeroCompanyRejected(t *testing.T) {
	svc, _ := setupService(t)

	loc := domain.Location{Name: "No Parent"}
	err := svc.Create(context.Background(), &loc)
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdate_RejectsDanglingCompany(t *testing.T) {
	svc, db := setupService(t)
	c := seedCompany(t, db)
	ctx := context.Background()

	loc := domain.Location{Name: "HQ", CompanyID: c.ID}
	if err := svc.Create(ctx, &loc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Update(ctx, loc.ID, func(e *domain.Location) {
		e.CompanyID = 12345
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	// The stored record keeps the original reference.
	got, err := svc.Get(ctx, loc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CompanyID != c.ID {
		t.Errorf("CompanyID=%d; want unchanged %d", got.CompanyID, c.ID)
	}
}

func TestDelete_BlockedByPurchaseOrder(t *testing.T) {
	svc, db := setupService(t)
	c := seedCompany(t, db)
	ctx := context.Background()

	loc := domain.Location{Name: "Depot", CompanyID: c.ID}
	if err := svc.Create(ctx, &loc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	po := domain.PurchaseOrder{OrderNumber: "PO-9", VendorID: c.ID, LocationID: loc.ID, Status: domain.OrderStatusDraft}
	if err := db.Create(&po).Error; err != nil {
		t.Fatalf("create purchase order: %v", err)
	}

	err := svc.Delete(ctx, loc.ID)
	if !domain.IsDeleteBlocked(err) {
		t.Errorf("expected DELETE_BLOCKED, got %v", err)
	}
}

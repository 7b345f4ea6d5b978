package purchaseorder

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
	locations := resource.NewService(resource.NewRepository[domain.Location](db, resource.Spec{
		Name: "locations", Table: "locations",
	}))
	svc := NewService(resource.NewService(resource.NewRepository[domain.PurchaseOrder](db, spec)), companies, locations)
	return svc, db
}

func seedRefs(t *testing.T, db *gorm.DB) (domain.Company, domain.Location) {
	t.Helper()
	c := domain.Company{Name: "Vendor"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
	l := domain.Location{Name: "Depot", CompanyID: c.ID}
	if err := db.Create(&l).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	return c, l
}

func TestCreate_Valid(t *testing.T) {
	svc, db := setupService(t)
	c, l := seedRefs(t, db)

	po := domain.PurchaseOrder{
		OrderNumber: "PO-1",
		VendorID:    c.ID,
		LocationID:  l.ID,
		Status:      domain.OrderStatusDraft,
		TotalAmount: 99.5,
	}
	if err := svc.Create(context.Background(), &po); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if po.ID == 0 {
		t.Error("expected non-zero id")
	}
}

func TestCreate_UnknownStatusRejected(t *testing.T) {
	svc, db := setupService(t)
	c, l := seedRefs(t, db)

	po := domain.PurchaseOrder{OrderNumber: "PO-1", VendorID: c.ID, LocationID: l.ID, Status: "shipped"}
	if err := svc.Create(context.Background(), &po); !domain.IsValidation(err) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}
}

func TestCreate_DanglingVendorRejected(t *testing.T) {
	svc, db := setupService(t)
	_, l := seedRefs(t, db)

	po := domain.PurchaseOrder{OrderNumber: "PO-1", VendorID: 999, LocationID: l.ID, Status: domain.OrderStatusDraft}
	if err := svc.Create(context.Background(), &po); !domain.IsValidation(err) {
		t.Errorf("expected validation error for dangling vendor, got %v", err)
	}
}

func TestCreate_DanglingLocationRejected(t *testing.T) {
	svc, db := setupService(t)
	c, _ := seedRefs(t, db)

	po := domain.PurchaseOrder{OrderNumber: "PO-1", VendorID: c.ID, LocationID: 999, Status: domain.OrderStatusDraft}
	if err := svc.Create(context.Background(), &po); !domain.IsValidation(err) {
		t.Errorf("expected validation error for dangling location, got %v", err)
	}
}

func TestUpdate_StatusTransition(t *testing.T) {
	svc, db := setupService(t)
	c, l := seedRefs(t, db)
	ctx := context.Background()

	po := domain.PurchaseOrder{OrderNumber: "PO-1", VendorID: c.ID, LocationID: l.ID, Status: domain.OrderStatusDraft}
	if err := svc.Create(ctx, &po); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, po.ID, func(e *domain.PurchaseOrder) {
		e.Status = domain.OrderStatusSubmitted
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != domain.OrderStatusSubmitted {
		t.Errorf("Status=%q; want submitted", updated.Status)
	}
}

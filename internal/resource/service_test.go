package resource

import (
	"context"
	"strings"
	"testing"

	"github.com/aegisx/platform/internal/domain"
)

func TestService_DeleteBlocked(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewRepository[domain.Company](db, companySpec()))
	ctx := context.Background()

	c := domain.Company{Name: "Vendor"}
	if err := svc.Create(ctx, &c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	po := domain.PurchaseOrder{OrderNumber: "PO-1", VendorID: c.ID, Status: domain.OrderStatusDraft}
	if err := db.Create(&po).Error; err != nil {
		t.Fatalf("create purchase order: %v", err)
	}

	err := svc.Delete(ctx, c.ID)
	if !domain.IsDeleteBlocked(err) {
		t.Fatalf("expected DELETE_BLOCKED, got %v", err)
	}

	appErr, ok := err.(*domain.AppError)
	if !ok {
		t.Fatalf("expected *domain.AppError, got %T", err)
	}
	guard, ok := appErr.Details.(*domain.DeleteGuard)
	if !ok {
		t.Fatalf("expected guard details, got %T", appErr.Details)
	}
	if guard.CanDelete {
		t.Error("guard.CanDelete should be false")
	}
	if !strings.Contains(appErr.Message, "purchase_orders") {
		t.Errorf("message %q should name the blocking table", appErr.Message)
	}

	// The record must survive the blocked delete.
	if _, err := svc.Get(ctx, c.ID); err != nil {
		t.Errorf("company should still exist after blocked delete: %v", err)
	}
}

func TestService_DeleteUnreferenced(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewRepository[domain.Company](db, companySpec()))
	ctx := context.Background()

	c := domain.Company{Name: "Lonely"}
	if err := svc.Create(ctx, &c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, c.ID); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestService_UpdateAppliesChanges(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewRepository[domain.Company](db, companySpec()))
	ctx := context.Background()

	c := domain.Company{Name: "Old", Email: "old@example.com"}
	if err := svc.Create(ctx, &c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, c.ID, func(e *domain.Company) {
		e.Name = "New"
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "New" {
		t.Errorf("Name=%q; want New", updated.Name)
	}
	if updated.Email != "old@example.com" {
		t.Errorf("Email=%q; untouched field changed", updated.Email)
	}
}

func TestService_UpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewRepository[domain.Company](db, companySpec()))

	_, err := svc.Update(context.Background(), 404, func(e *domain.Company) {})
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

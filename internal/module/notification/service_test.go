package notification

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/resource"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Notification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(resource.NewService(resource.NewRepository[domain.Notification](db, spec)))
}

func TestCreate_AssignsTokenAndStatus(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	n := domain.Notification{Title: "Hello", Recipient: "ops@example.com"}
	if err := svc.Create(ctx, &n); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if n.Token == "" {
		t.Fatal("expected a token to be assigned")
	}
	if _, err := uuid.Parse(n.Token); err != nil {
		t.Errorf("token %q is not a valid uuid: %v", n.Token, err)
	}
	if n.Status != domain.NotificationPending {
		t.Errorf("Status=%q; want pending", n.Status)
	}
}

func TestCreate_TokensAreUnique(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	a := domain.Notification{Title: "A", Recipient: "x@example.com"}
	b := domain.Notification{Title: "B", Recipient: "y@example.com"}
	if err := svc.Create(ctx, &a); err != nil {
		t.Fatalf("Create a: %v", err)
	}
	if err := svc.Create(ctx, &b); err != nil {
		t.Fatalf("Create b: %v", err)
	}
	if a.Token == b.Token {
		t.Error("two notifications share a token")
	}
}

func TestMarkRead(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	n := domain.Notification{Title: "Unread", Recipient: "x@example.com"}
	if err := svc.Create(ctx, &n); err != nil {
		t.Fatalf("Create: %v", err)
	}

	read, err := svc.MarkRead(ctx, n.ID)
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if read.ReadAt == nil {
		t.Fatal("expected ReadAt to be set")
	}
	first := *read.ReadAt

	// A second mark is a no-op; the timestamp does not move.
	again, err := svc.MarkRead(ctx, n.ID)
	if err != nil {
		t.Fatalf("second MarkRead: %v", err)
	}
	if again.ReadAt == nil || again.ReadAt.Unix() != first.Unix() {
		t.Errorf("ReadAt=%v; want unchanged %v", again.ReadAt, first)
	}
}

func TestMarkRead_NotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.MarkRead(context.Background(), 404)
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

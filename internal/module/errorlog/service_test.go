package errorlog

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
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
	if err := db.AutoMigrate(&domain.ErrorLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(resource.NewService(resource.NewRepository[domain.ErrorLog](db, spec)))
}

func TestCreateBatch(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	entries := make([]domain.ErrorLog, 5)
	for i := range entries {
		entries[i] = domain.ErrorLog{
			Level:   domain.LogLevelError,
			Message: fmt.Sprintf("boom %d", i),
			Source:  "frontend",
		}
	}
	if err := svc.CreateBatch(ctx, entries); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 5 {
		t.Errorf("Total=%d; want 5", stats.Total)
	}
}

func TestCreateBatch_Empty(t *testing.T) {
	svc := setupService(t)
	if err := svc.CreateBatch(context.Background(), nil); err != nil {
		t.Errorf("empty batch should be a no-op, got %v", err)
	}
}

func TestLevelStats(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	batch := []domain.ErrorLog{
		{Level: domain.LogLevelError, Message: "a"},
		{Level: domain.LogLevelError, Message: "b"},
		{Level: domain.LogLevelWarn, Message: "c"},
		{Level: domain.LogLevelInfo, Message: "d"},
	}
	if err := svc.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	stats, err := svc.LevelStats(ctx)
	if err != nil {
		t.Fatalf("LevelStats: %v", err)
	}
	if stats.Total != 4 {
		t.Errorf("Total=%d; want 4", stats.Total)
	}
	if stats.ByLevel["error"] != 2 || stats.ByLevel["warn"] != 1 || stats.ByLevel["info"] != 1 {
		t.Errorf("ByLevel=%v; want error=2 warn=1 info=1", stats.ByLevel)
	}
}

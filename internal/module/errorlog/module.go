// Package errorlog serves the error-logs resource: client- and
// server-reported error events, ingested singly or in atomic batches.
package errorlog

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/middleware"
	"github.com/aegisx/platform/internal/pkg"
	"github.com/aegisx/platform/internal/policy"
	"github.com/aegisx/platform/internal/resource"
)

// spec declares the error-logs resource. Nothing references error logs, so
// deletes are unguarded.
var spec = resource.Spec{
	Name:        "error-logs",
	Table:       "error_logs",
	MaxLimit:    200,
	DefaultSort: "created_at:desc",
	SearchFields: []string{
		"message", "source",
	},
	SortFields: map[string]string{
		"id":         "id",
		"level":      "level",
		"source":     "source",
		"created_at": "created_at",
	},
	Filters: []resource.FilterField{
		{Key: "level", Column: "level", Kind: resource.FilterString},
		{Key: "source", Column: "source", Kind: resource.FilterString},
		{Key: "request_id", Column: "request_id", Kind: resource.FilterString},
	},
}

// Module implements the app.Module interface for the error-logs resource.
// Error logs are immutable: there is no update route.
type Module struct {
	svc     *Service
	handler *resource.Handler[domain.ErrorLog, CreateRequest, struct{}]
	logger  *slog.Logger
}

// NewModule wires the error-logs repository, service, and handler.
func NewModule(db *gorm.DB, logger *slog.Logger) *Module {
	if logger == nil {
		logger = slog.Default()
	}
	repo := resource.NewRepository[domain.ErrorLog](db, spec)
	svc := NewService(resource.NewService(repo))
	handler := resource.NewHandler(svc, spec, logger, fromCreate,
		func(*domain.ErrorLog, struct{}) {})
	return &Module{svc: svc, handler: handler, logger: logger}
}

// RegisterRoutes registers the error-logs API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/error-logs")
	g.GET("", perm(policy.ActionRead), m.handler.List)
	g.GET("/stats", perm(policy.ActionRead), m.stats)
	g.GET("/:id", perm(policy.ActionRead), m.handler.Get)
	g.POST("", perm(policy.ActionCreate), m.handler.Create)
	g.POST("/batch", perm(policy.ActionCreate), m.createBatch)
	g.DELETE("/:id", perm(policy.ActionDelete), m.handler.Delete)
}

// createBatch handles POST /error-logs/batch.
func (m *Module) createBatch(c *gin.Context) {
	var req BatchRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	entries := make([]domain.ErrorLog, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, fromCreate(e))
	}

	if err := m.svc.CreateBatch(c.Request.Context(), entries); err != nil {
		pkg.Error(c, err)
		return
	}

	m.logger.InfoContext(c.Request.Context(), "error log batch ingested",
		slog.Int("count", len(entries)),
		slog.String("actor", middleware.UserIDFromContext(c)),
	)
	pkg.Created(c, gin.H{"ingested": len(entries)})
}

// stats handles GET /error-logs/stats with the per-level breakdown.
func (m *Module) stats(c *gin.Context) {
	stats, err := m.svc.LevelStats(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, stats)
}

func perm(action string) gin.HandlerFunc {
	return middleware.RequirePermission(spec.Name + ":" + action)
}

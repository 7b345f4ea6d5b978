// Package notification serves the notifications resource: outbound messages
// queued for recipients, each carrying an opaque dedupe token.
package notification

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

// spec declares the notifications resource. Nothing references
// notifications, so deletes are unguarded.
var spec = resource.Spec{
	Name:        "notifications",
	Table:       "notifications",
	MaxLimit:    100,
	DefaultSort: "created_at:desc",
	SearchFields: []string{
		"title", "body", "recipient",
	},
	SortFields: map[string]string{
		"id":         "id",
		"title":      "title",
		"status":     "status",
		"created_at": "created_at",
		"updated_at": "updated_at",
	},
	Filters: []resource.FilterField{
		{Key: "status", Column: "status", Kind: resource.FilterString},
		{Key: "channel", Column: "channel", Kind: resource.FilterString},
		{Key: "recipient", Column: "recipient", Kind: resource.FilterString},
	},
}

// Module implements the app.Module interface for the notifications resource.
type Module struct {
	svc     *Service
	handler *resource.Handler[domain.Notification, CreateRequest, UpdateRequest]
	logger  *slog.Logger
}

// NewModule wires the notifications repository, service, and handler.
func NewModule(db *gorm.DB, logger *slog.Logger) *Module {
	if logger == nil {
		logger = slog.Default()
	}
	repo := resource.NewRepository[domain.Notification](db, spec)
	svc := NewService(resource.NewService(repo))
	handler := resource.NewHandler(svc, spec, logger, fromCreate, applyUpdate)
	return &Module{svc: svc, handler: handler, logger: logger}
}

// RegisterRoutes registers the notifications API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/notifications")
	g.GET("", perm(policy.ActionRead), m.handler.List)
	g.GET("/stats", perm(policy.ActionRead), m.handler.Stats)
	g.GET("/:id", perm(policy.ActionRead), m.handler.Get)
	g.GET("/:id/references", perm(policy.ActionDelete), m.handler.References)
	g.POST("", perm(policy.ActionCreate), m.handler.Create)
	g.POST("/:id/read", perm(policy.ActionUpdate), m.markRead)
	g.PUT("/:id", perm(policy.ActionUpdate), m.handler.Update)
	g.DELETE("/:id", perm(policy.ActionDelete), m.handler.Delete)
}

// markRead handles POST /notifications/:id/read.
func (m *Module) markRead(c *gin.Context) {
	id, err := resource.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	entity, svcErr := m.svc.MarkRead(c.Request.Context(), id)
	if svcErr != nil {
		pkg.Error(c, svcErr)
		return
	}

	m.logger.InfoContext(c.Request.Context(), "notification marked read",
		slog.Uint64("id", uint64(id)),
		slog.String("actor", middleware.UserIDFromContext(c)),
	)
	pkg.Success(c, entity)
}

func perm(action string) gin.HandlerFunc {
	return middleware.RequirePermission(spec.Name + ":" + action)
}

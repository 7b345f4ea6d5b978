// Package user serves the users resource: accounts managed by
// administrators and consumed by the auth flow.
package user

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/middleware"
	"github.com/aegisx/platform/internal/policy"
	"github.com/aegisx/platform/internal/resource"
)

// spec declares the users resource. PasswordHash never serializes, so the
// field allow-list only needs to cover the public columns.
var spec = resource.Spec{
	Name:        "users",
	Table:       "users",
	MaxLimit:    100,
	DefaultSort: "created_at:desc",
	SearchFields: []string{
		"name", "email",
	},
	SortFields: map[string]string{
		"id":         "id",
		"name":       "name",
		"email":      "email",
		"created_at": "created_at",
		"updated_at": "updated_at",
	},
	Filters: []resource.FilterField{
		{Key: "role", Column: "role", Kind: resource.FilterString},
	},
}

// Module implements the app.Module interface for the users resource.
type Module struct {
	svc     *Service
	handler *resource.Handler[domain.User, CreateRequest, UpdateRequest]
}

// NewModule wires the users repository, service, and handler.
func NewModule(db *gorm.DB, logger *slog.Logger) *Module {
	repo := resource.NewRepository[domain.User](db, spec)
	svc := NewService(resource.NewService(repo))
	handler := resource.NewHandler(svc, spec, logger, fromCreate, applyUpdate)
	return &Module{svc: svc, handler: handler}
}

// Store returns the persistence adapter consumed by the auth flow.
func (m *Module) Store() *Store { return NewStore(m.svc) }

// RegisterRoutes registers the users API routes. Only admin holds users
// permissions, so every route is effectively admin-only.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/users")
	g.GET("", perm(policy.ActionRead), m.handler.List)
	g.GET("/stats", perm(policy.ActionRead), m.handler.Stats)
	g.GET("/:id", perm(policy.ActionRead), m.handler.Get)
	g.POST("", perm(policy.ActionCreate), m.handler.Create)
	g.PUT("/:id", perm(policy.ActionUpdate), m.handler.Update)
	g.DELETE("/:id", perm(policy.ActionDelete), m.handler.Delete)
}

func perm(action string) gin.HandlerFunc {
	return middleware.RequirePermission(spec.Name + ":" + action)
}

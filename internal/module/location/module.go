// Package location serves the locations resource: physical sites belonging
// to a company.
package location

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/middleware"
	"github.com/aegisx/platform/internal/policy"
	"github.com/aegisx/platform/internal/resource"
)

// spec declares the locations resource. Deleting a location is blocked while
// purchase orders still reference it.
var spec = resource.Spec{
	Name:        "locations",
	Table:       "locations",
	MaxLimit:    100,
	DefaultSort: "created_at:desc",
	SearchFields: []string{
		"name", "code", "address",
	},
	SortFields: map[string]string{
		"id":         "id",
		"name":       "name",
		"code":       "code",
		"created_at": "created_at",
		"updated_at": "updated_at",
	},
	Filters: []resource.FilterField{
		{Key: "company_id", Column: "company_id", Kind: resource.FilterNumber},
		{Key: "is_active", Column: "is_active", Kind: resource.FilterBool},
	},
	Guards: []resource.ReferenceGuard{
		{Table: "purchase_orders", Column: "location_id"},
	},
}

// Module implements the app.Module interface for the locations resource.
type Module struct {
	svc     *Service
	handler *resource.Handler[domain.Location, CreateRequest, UpdateRequest]
}

// NewModule wires the locations repository, service, and handler.
func NewModule(db *gorm.DB, logger *slog.Logger, companies CompanyFinder) *Module {
	repo := resource.NewRepository[domain.Location](db, spec)
	svc := NewService(resource.NewService(repo), companies)
	handler := resource.NewHandler(svc, spec, logger, fromCreate, applyUpdate)
	return &Module{svc: svc, handler: handler}
}

// Service exposes the locations service for modules that validate location
// references.
func (m *Module) Service() *Service { return m.svc }

// RegisterRoutes registers the locations API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/locations")
	g.GET("", perm(policy.ActionRead), m.handler.List)
	g.GET("/stats", perm(policy.ActionRead), m.handler.Stats)
	g.GET("/:id", perm(policy.ActionRead), m.handler.Get)
	g.GET("/:id/references", perm(policy.ActionDelete), m.handler.References)
	g.POST("", perm(policy.ActionCreate), m.handler.Create)
	g.PUT("/:id", perm(policy.ActionUpdate), m.handler.Update)
	g.DELETE("/:id", perm(policy.ActionDelete), m.handler.Delete)
}

func perm(action string) gin.HandlerFunc {
	return middleware.RequirePermission(spec.Name + ":" + action)
}

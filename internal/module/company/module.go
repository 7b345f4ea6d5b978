// Package company serves the companies resource: vendor and customer
// organizations referenced by locations and purchase orders.
package company

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/middleware"
	"github.com/aegisx/platform/internal/policy"
	"github.com/aegisx/platform/internal/resource"
)

// spec declares the companies resource. Deleting a company is blocked while
// locations or purchase orders still reference it.
var spec = resource.Spec{
	Name:        "companies",
	Table:       "companies",
	MaxLimit:    100,
	DefaultSort: "created_at:desc",
	SearchFields: []string{
		"name", "tax_id", "email",
	},
	SortFields: map[string]string{
		"id":         "id",
		"name":       "name",
		"tax_id":     "tax_id",
		"created_at": "created_at",
		"updated_at": "updated_at",
	},
	Filters: []resource.FilterField{
		{Key: "is_active", Column: "is_active", Kind: resource.FilterBool},
		{Key: "tax_id", Column: "tax_id", Kind: resource.FilterString},
	},
	Guards: []resource.ReferenceGuard{
		{Table: "locations", Column: "company_id"},
		{Table: "purchase_orders", Column: "vendor_id"},
	},
}

// Module implements the app.Module interface for the companies resource.
type Module struct {
	svc     *resource.Service[domain.Company]
	handler *resource.Handler[domain.Company, CreateRequest, UpdateRequest]
}

// NewModule wires the companies repository, service, and handler.
func NewModule(db *gorm.DB, logger *slog.Logger) *Module {
	repo := resource.NewRepository[domain.Company](db, spec)
	svc := resource.NewService(repo)
	handler := resource.NewHandler(svc, spec, logger, fromCreate, applyUpdate)
	return &Module{svc: svc, handler: handler}
}

// Service exposes the companies service for modules that validate company
// references.
func (m *Module) Service() *resource.Service[domain.Company] { return m.svc }

// RegisterRoutes registers the companies API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/companies")
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

// Package purchaseorder serves the purchase-orders resource: orders placed
// with a vendor company for delivery to a location.
package purchaseorder

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/middleware"
	"github.com/aegisx/platform/internal/policy"
	"github.com/aegisx/platform/internal/resource"
)

// spec declares the purchase-orders resource. Nothing references purchase
// orders, so deletes are unguarded.
var spec = resource.Spec{
	Name:        "purchase-orders",
	Table:       "purchase_orders",
	MaxLimit:    100,
	DefaultSort: "created_at:desc",
	SearchFields: []string{
		"order_number", "notes",
	},
	SortFields: map[string]string{
		"id":           "id",
		"order_number": "order_number",
		"status":       "status",
		"total_amount": "total_amount",
		"created_at":   "created_at",
		"updated_at":   "updated_at",
	},
	Filters: []resource.FilterField{
		{Key: "vendor_id", Column: "vendor_id", Kind: resource.FilterNumber},
		{Key: "location_id", Column: "location_id", Kind: resource.FilterNumber},
		{Key: "status", Column: "status", Kind: resource.FilterString},
		{Key: "total_amount", Column: "total_amount", Kind: resource.FilterRange},
	},
}

// Module implements the app.Module interface for the purchase-orders resource.
type Module struct {
	svc     *Service
	handler *resource.Handler[domain.PurchaseOrder, CreateRequest, UpdateRequest]
}

// NewModule wires the purchase-orders repository, service, and handler.
func NewModule(db *gorm.DB, logger *slog.Logger, companies CompanyFinder, locations LocationFinder) *Module {
	repo := resource.NewRepository[domain.PurchaseOrder](db, spec)
	svc := NewService(resource.NewService(repo), companies, locations)
	handler := resource.NewHandler(svc, spec, logger, fromCreate, applyUpdate)
	return &Module{svc: svc, handler: handler}
}

// RegisterRoutes registers the purchase-orders API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/purchase-orders")
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

package purchaseorder

import "github.com/aegisx/platform/internal/domain"

// CreateRequest represents the input for creating a purchase order.
type CreateRequest struct {
	OrderNumber string  `json:"order_number" form:"order_number" binding:"required,min=1,max=64"`
	VendorID    uint    `json:"vendor_id" form:"vendor_id" binding:"required"`
	LocationID  uint    `json:"location_id" form:"location_id" binding:"required"`
	Status      string  `json:"status" form:"status" binding:"omitempty,max=32"`
	TotalAmount float64 `json:"total_amount" form:"total_amount" binding:"omitempty,gte=0"`
	Notes       string  `json:"notes" form:"notes" binding:"omitempty,max=1000"`
}

// UpdateRequest represents the input for updating a purchase order. Absent
// fields are left unchanged.
type UpdateRequest struct {
	OrderNumber *string  `json:"order_number" form:"order_number" binding:"omitempty,min=1,max=64"`
	VendorID    *uint    `json:"vendor_id" form:"vendor_id"`
	LocationID  *uint    `json:"location_id" form:"location_id"`
	Status      *string  `json:"status" form:"status" binding:"omitempty,max=32"`
	TotalAmount *float64 `json:"total_amount" form:"total_amount" binding:"omitempty,gte=0"`
	Notes       *string  `json:"notes" form:"notes" binding:"omitempty,max=1000"`
}

func fromCreate(req CreateRequest) domain.PurchaseOrder {
	status := req.Status
	if status == "" {
		status = domain.OrderStatusDraft
	}
	return domain.PurchaseOrder{
		OrderNumber: req.OrderNumber,
		VendorID:    req.VendorID,
		LocationID:  req.LocationID,
		Status:      status,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}
}

func applyUpdate(e *domain.PurchaseOrder, req UpdateRequest) {
	if req.OrderNumber != nil {
		e.OrderNumber = *req.OrderNumber
	}
	if req.VendorID != nil {
		e.VendorID = *req.VendorID
	}
	if req.LocationID != nil {
		e.LocationID = *req.LocationID
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.TotalAmount != nil {
		e.TotalAmount = *req.TotalAmount
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}
}

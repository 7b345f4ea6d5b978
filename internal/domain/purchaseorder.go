package domain

// Purchase order statuses.
const (
	OrderStatusDraft     = "draft"
	OrderStatusSubmitted = "submitted"
	OrderStatusApproved  = "approved"
	OrderStatusReceived  = "received"
	OrderStatusCancelled = "cancelled"
)

// PurchaseOrder is an order placed with a vendor company for a location.
type PurchaseOrder struct {
	BaseModel
	OrderNumber string  `gorm:"column:order_number;size:64;uniqueIndex;not null" json:"order_number,omitempty"`
	VendorID    uint    `gorm:"column:vendor_id;index" json:"vendor_id,omitempty"`
	LocationID  uint    `gorm:"column:location_id;index" json:"location_id,omitempty"`
	Status      string  `gorm:"size:32;default:draft" json:"status,omitempty"`
	TotalAmount float64 `gorm:"column:total_amount" json:"total_amount"`
	Notes       string  `gorm:"size:1000" json:"notes,omitempty"`
}

// TableName overrides the default table name.
func (PurchaseOrder) TableName() string { return "purchase_orders" }

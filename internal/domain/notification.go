package domain

import "time"

// Notification delivery statuses.
const (
	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
)

// Notification is an outbound message queued for a recipient.
// Token is an opaque dedupe identifier assigned at creation.
type Notification struct {
	BaseModel
	Token     string     `gorm:"size:36;uniqueIndex" json:"token,omitempty"`
	Title     string     `gorm:"size:255;not null" json:"title,omitempty"`
	Body      string     `gorm:"size:2000" json:"body,omitempty"`
	Channel   string     `gorm:"size:32" json:"channel,omitempty"`
	Recipient string     `gorm:"size:255;index" json:"recipient,omitempty"`
	Status    string     `gorm:"size:32;default:pending;index" json:"status,omitempty"`
	ReadAt    *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
}

// TableName overrides the default table name.
func (Notification) TableName() string { return "notifications" }

package notification

import "github.com/aegisx/platform/internal/domain"

// CreateRequest represents the input for queuing a notification.
type CreateRequest struct {
	Title     string `json:"title" form:"title" binding:"required,min=1,max=255"`
	Body      string `json:"body" form:"body" binding:"omitempty,max=2000"`
	Channel   string `json:"channel" form:"channel" binding:"omitempty,max=32"`
	Recipient string `json:"recipient" form:"recipient" binding:"required,max=255"`
}

// UpdateRequest represents the input for updating a notification. Absent
// fields are left unchanged. The token and read timestamp are never settable
// through updates.
type UpdateRequest struct {
	Title     *string `json:"title" form:"title" binding:"omitempty,min=1,max=255"`
	Body      *string `json:"body" form:"body" binding:"omitempty,max=2000"`
	Channel   *string `json:"channel" form:"channel" binding:"omitempty,max=32"`
	Recipient *string `json:"recipient" form:"recipient" binding:"omitempty,max=255"`
	Status    *string `json:"status" form:"status" binding:"omitempty,oneof=pending sent failed"`
}

func fromCreate(req CreateRequest) domain.Notification {
	return domain.Notification{
		Title:     req.Title,
		Body:      req.Body,
		Channel:   req.Channel,
		Recipient: req.Recipient,
		Status:    domain.NotificationPending,
	}
}

func applyUpdate(e *domain.Notification, req UpdateRequest) {
	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Body != nil {
		e.Body = *req.Body
	}
	if req.Channel != nil {
		e.Channel = *req.Channel
	}
	if req.Recipient != nil {
		e.Recipient = *req.Recipient
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
}

package errorlog

import "github.com/aegisx/platform/internal/domain"

// CreateRequest represents the input for reporting one error event.
type CreateRequest struct {
	Level     string `json:"level" form:"level" binding:"required,oneof=debug info warn error fatal"`
	Message   string `json:"message" form:"message" binding:"required,min=1,max=2000"`
	Source    string `json:"source" form:"source" binding:"omitempty,max=255"`
	RequestID string `json:"request_id" form:"request_id" binding:"omitempty,max=64"`
	Stack     string `json:"stack" form:"stack" binding:"omitempty,max=8000"`
}

// BatchRequest represents the input for reporting a batch of error events
// atomically.
type BatchRequest struct {
	Entries []CreateRequest `json:"entries" binding:"required,min=1,max=100,dive"`
}

// LevelStats is the aggregate returned by the stats endpoint: the total
// count plus a per-level breakdown.
type LevelStats struct {
	Total   int64            `json:"total"`
	ByLevel map[string]int64 `json:"by_level"`
}

func fromCreate(req CreateRequest) domain.ErrorLog {
	return domain.ErrorLog{
		Level:     req.Level,
		Message:   req.Message,
		Source:    req.Source,
		RequestID: req.RequestID,
		Stack:     req.Stack,
	}
}

package domain

import (
	"math"
	"time"
)

// BaseModel is the common base struct for all resource records.
// It replaces gorm.Model to avoid the implicit soft delete behavior of
// DeletedAt: deletion policy is uniform hard delete, guarded by reference
// checks (see DeleteGuard).
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the primary key. It exists so generic code can recover the
// identifier of any resource record.
func (m BaseModel) GetID() uint { return m.ID }

// SortKey is one parsed "field:direction" pair from the sort parameter.
// Field is the public field name; it is resolved to a storage column
// through the per-resource sort allow-list before use.
type SortKey struct {
	Field     string
	Direction string // "asc" or "desc"
}

// ListQuery holds pagination, sorting, search, projection, and filtering
// parameters for one list operation. It is built fresh per request and
// never persisted.
type ListQuery struct {
	Page    int
	Limit   int
	Sort    []SortKey
	Search  string
	Fields  []string
	Filters map[string]string
}

// Offset returns the row offset implied by Page and Limit.
func (q ListQuery) Offset() int {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// PageResult is the output of a list operation: one page of records plus the
// filtered-but-unpaginated total.
type PageResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResult creates a PageResult with computed TotalPages.
func NewPageResult[T any](data []T, total int64, q ListQuery) *PageResult[T] {
	totalPages := 0
	if q.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(q.Limit)))
	}

	if data == nil {
		data = []T{}
	}

	return &PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
	}
}

// BlockingReference is one dependent table/foreign-key pair holding rows
// that reference a record about to be deleted.
type BlockingReference struct {
	Table   string `json:"table"`
	Field   string `json:"field"`
	Count   int64  `json:"count"`
	Cascade bool   `json:"cascade"`
}

// DeleteGuard is the result of the pre-delete reference check. CanDelete is
// true iff every blocking reference either has zero rows or is cascade-safe.
// Computed on demand, never stored.
type DeleteGuard struct {
	CanDelete bool                `json:"canDelete"`
	BlockedBy []BlockingReference `json:"blockedBy"`
}

// Stats is the minimal aggregate every resource exposes.
type Stats struct {
	Total int64 `json:"total"`
}

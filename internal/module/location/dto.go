package location

import "github.com/aegisx/platform/internal/domain"

// CreateRequest represents the input for creating a location.
type CreateRequest struct {
	Name      string `json:"name" form:"name" binding:"required,min=1,max=255"`
	Code      string `json:"code" form:"code" binding:"omitempty,max=64"`
	CompanyID uint   `json:"company_id" form:"company_id" binding:"required"`
	Address   string `json:"address" form:"address" binding:"omitempty,max=500"`
	IsActive  *bool  `json:"is_active" form:"is_active"`
}

// UpdateRequest represents the input for updating a location. Absent fields
// are left unchanged.
type UpdateRequest struct {
	Name      *string `json:"name" form:"name" binding:"omitempty,min=1,max=255"`
	Code      *string `json:"code" form:"code" binding:"omitempty,max=64"`
	CompanyID *uint   `json:"company_id" form:"company_id"`
	Address   *string `json:"address" form:"address" binding:"omitempty,max=500"`
	IsActive  *bool   `json:"is_active" form:"is_active"`
}

func fromCreate(req CreateRequest) domain.Location {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return domain.Location{
		Name:      req.Name,
		Code:      req.Code,
		CompanyID: req.CompanyID,
		Address:   req.Address,
		IsActive:  active,
	}
}

func applyUpdate(e *domain.Location, req UpdateRequest) {
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Code != nil {
		e.Code = *req.Code
	}
	if req.CompanyID != nil {
		e.CompanyID = *req.CompanyID
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
}

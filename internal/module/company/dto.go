package company

import "github.com/aegisx/platform/internal/domain"

// CreateRequest represents the input for creating a company.
type CreateRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=1,max=255"`
	TaxID    string `json:"tax_id" form:"tax_id" binding:"omitempty,max=64"`
	Email    string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty,max=64"`
	Address  string `json:"address" form:"address" binding:"omitempty,max=500"`
	IsActive *bool  `json:"is_active" form:"is_active"`
}

// UpdateRequest represents the input for updating a company. Absent fields
// are left unchanged.
type UpdateRequest struct {
	Name     *string `json:"name" form:"name" binding:"omitempty,min=1,max=255"`
	TaxID    *string `json:"tax_id" form:"tax_id" binding:"omitempty,max=64"`
	Email    *string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Phone    *string `json:"phone" form:"phone" binding:"omitempty,max=64"`
	Address  *string `json:"address" form:"address" binding:"omitempty,max=500"`
	IsActive *bool   `json:"is_active" form:"is_active"`
}

func fromCreate(req CreateRequest) domain.Company {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return domain.Company{
		Name:     req.Name,
		TaxID:    req.TaxID,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: active,
	}
}

func applyUpdate(e *domain.Company, req UpdateRequest) {
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.TaxID != nil {
		e.TaxID = *req.TaxID
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
}

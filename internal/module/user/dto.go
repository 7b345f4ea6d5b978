package user

import "github.com/aegisx/platform/internal/domain"

// CreateRequest represents the input for provisioning a user.
type CreateRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" form:"email" binding:"required,email,max=255"`
	Password string `json:"password" form:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=user admin"`
}

// UpdateRequest represents the input for updating a user. Absent fields are
// left unchanged.
type UpdateRequest struct {
	Name     *string `json:"name" form:"name" binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Password *string `json:"password" form:"password" binding:"omitempty,min=8,max=72"`
	Role     *string `json:"role" form:"role" binding:"omitempty,oneof=user admin"`
}

// fromCreate carries the plaintext password in PasswordHash; the service
// replaces it with a bcrypt hash before the record is persisted.
func fromCreate(req CreateRequest) domain.User {
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	return domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: req.Password,
		Role:         role,
	}
}

func applyUpdate(e *domain.User, req UpdateRequest) {
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Password != nil {
		e.PasswordHash = *req.Password
	}
	if req.Role != nil {
		e.Role = *req.Role
	}
}

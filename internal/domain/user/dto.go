package user

import (
	"github.com/gjd78/planilla-backend/internal/pkg/validator"
)

// ========================================
// USER DTOs
// ========================================

const MinPasswordLength = 6

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if validator.HasWhitespace(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username cannot contain spaces",
		})
	}

	if len(r.Password) < MinPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if !IsAllowedRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is not valid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRequest edits username and role; the password changes only
// when a non-empty one is provided.
type UpdateUserRequest struct {
	ID       int64  `json:"-"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if validator.HasWhitespace(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username cannot contain spaces",
		})
	}

	if r.Password != "" && len(r.Password) < MinPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if !IsAllowedRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is not valid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: u.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

package auth

import (
	"github.com/gjd78/planilla-backend/internal/domain/user"
	"github.com/gjd78/planilla-backend/internal/pkg/validator"
)

// ========================================
// AUTH DTOs
// ========================================

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
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

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  user.UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *UpdateProfileRequest) Validate() error {
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

	if r.NewPassword != "" && len(r.NewPassword) < user.MinPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new password must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

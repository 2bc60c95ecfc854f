package auth

import (
	"context"

	"github.com/gjd78/planilla-backend/internal/domain/user"
)

// AuthService defines login and profile operations. Role enforcement
// happens at the HTTP middleware; the service only authenticates.
type AuthService interface {
	// Login checks the credentials against the active user set and
	// issues a signed token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Verify re-reads the token's user from the store, rejecting
	// deleted or deactivated accounts even if the token is still valid.
	Verify(ctx context.Context) (user.UserResponse, error)

	// UpdateProfile changes the caller's username and, when a new
	// password is supplied, the password (gated on the current one).
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (user.UserResponse, error)
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gjd78/planilla-backend/internal/domain/auth"
	"github.com/gjd78/planilla-backend/internal/domain/user"
	"github.com/gjd78/planilla-backend/internal/pkg/database"
	"github.com/gjd78/planilla-backend/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := a.UserRepository.GetActiveByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error for unknown user and bad password.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := a.jwtService.GenerateToken(&u)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.LoginResponse{
		Token: token,
		User:  u.ToResponse(),
	}, nil
}

// Verify implements auth.AuthService. The account is re-read from the
// store so a token outlives neither deactivation nor deletion.
func (a *AuthServiceImpl) Verify(ctx context.Context) (user.UserResponse, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, auth.ErrInvalidToken
	}

	u, err := a.UserRepository.GetActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, auth.ErrUserInactive
		}
		return user.UserResponse{}, fmt.Errorf("failed to verify user: %w", err)
	}

	return u.ToResponse(), nil
}

// UpdateProfile implements auth.AuthService.
func (a *AuthServiceImpl) UpdateProfile(ctx context.Context, req auth.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, auth.ErrInvalidToken
	}

	u, err := a.UserRepository.GetActiveByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to load profile: %w", err)
	}

	if req.Username != u.Username {
		exists, err := a.UserRepository.ExistsActiveUsername(ctx, req.Username, &userID)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return user.UserResponse{}, user.ErrUsernameExists
		}
	}

	var passwordHash *string
	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			return user.UserResponse{}, auth.ErrCurrentPasswordRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			return user.UserResponse{}, auth.ErrCurrentPasswordIncorrect
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashStr := string(hash)
		passwordHash = &hashStr
	}

	if err := a.UserRepository.Update(ctx, userID, req.Username, u.Role, passwordHash); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}

	updated, err := a.UserRepository.GetActiveByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to reload profile: %w", err)
	}

	return updated.ToResponse(), nil
}

// UserIDFromContext extracts the authenticated user ID from the token
// claims. JSON numbers decode as float64, so the claim is converted back.
func UserIDFromContext(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	switch id := claims["user_id"].(type) {
	case float64:
		return int64(id), nil
	case int64:
		return id, nil
	default:
		return 0, fmt.Errorf("user_id claim is missing or invalid")
	}
}

// RoleFromContext extracts the caller's role claim.
func RoleFromContext(ctx context.Context) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("role claim is missing or invalid")
	}

	return user.Role(role), nil
}

package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/gjd78/planilla-backend/internal/domain/user"
	"github.com/gjd78/planilla-backend/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
	}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}

	return responses, nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id int64) (user.UserResponse, error) {
	u, err := s.UserRepository.GetActiveByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	return u.ToResponse(), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.UserRepository.ExistsActiveUsername(ctx, req.Username, nil)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created.ToResponse(), nil
}

// Update implements user.UserService. Super admin accounts are locked
// against edits, including by other super admins.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.UserRepository.GetActiveByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	if existing.IsSuperAdmin() {
		return user.UserResponse{}, user.ErrSuperAdminLocked
	}

	if req.Username != existing.Username {
		exists, err := s.UserRepository.ExistsActiveUsername(ctx, req.Username, &req.ID)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return user.UserResponse{}, user.ErrUsernameExists
		}
	}

	var passwordHash *string
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashStr := string(hash)
		passwordHash = &hashStr
	}

	if err := s.UserRepository.Update(ctx, req.ID, req.Username, user.Role(req.Role), passwordHash); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.GetActiveByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to reload user: %w", err)
	}

	return updated.ToResponse(), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	existing, err := s.UserRepository.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrUserNotFound
		}
		return err
	}
	if existing.IsSuperAdmin() {
		return user.ErrSuperAdminLocked
	}

	return s.UserRepository.SoftDelete(ctx, id)
}

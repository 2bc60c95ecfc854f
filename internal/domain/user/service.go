package user

import "context"

// UserService defines business logic for user management. All
// operations are reachable by super admins only; the handlers enforce
// that through the role middleware.
type UserService interface {
	List(ctx context.Context) ([]UserResponse, error)
	Get(ctx context.Context, id int64) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// Update edits an existing user. Super admin rows are locked.
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// Delete soft-deletes a user. Super admin rows are locked.
	Delete(ctx context.Context, id int64) error
}

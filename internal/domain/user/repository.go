package user

import "context"

// UserRepository defines data access for authentication principals.
type UserRepository interface {
	ListActive(ctx context.Context) ([]User, error)
	GetActiveByID(ctx context.Context, id int64) (User, error)
	GetActiveByUsername(ctx context.Context, username string) (User, error)

	// ExistsActiveUsername reports whether another active user already
	// holds the username. excludeID skips the user being updated.
	ExistsActiveUsername(ctx context.Context, username string, excludeID *int64) (bool, error)

	Create(ctx context.Context, newUser User) (User, error)

	// Update writes username, role and, when hash is non-nil, the
	// password hash.
	Update(ctx context.Context, id int64, username string, role Role, passwordHash *string) error

	// SoftDelete flips is_active.
	SoftDelete(ctx context.Context, id int64) error
}

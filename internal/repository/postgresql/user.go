package postgresql

import (
	"context"
	"fmt"

	"github.com/gjd78/planilla-backend/internal/domain/user"
	"github.com/gjd78/planilla-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, password_hash, role, is_active, created_at, updated_at`

// ListActive implements user.UserRepository.
func (r *userRepository) ListActive(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// GetActiveByID implements user.UserRepository.
func (r *userRepository) GetActiveByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND is_active = true
	`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetActiveByUsername implements user.UserRepository.
func (r *userRepository) GetActiveByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 AND is_active = true
	`

	u, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

// ExistsActiveUsername implements user.UserRepository.
func (r *userRepository) ExistsActiveUsername(ctx context.Context, username string, excludeID *int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE username = $1 AND is_active = true AND ($2::bigint IS NULL OR id <> $2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, username, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return exists, nil
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (username, password_hash, role, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.Username,
		newUser.PasswordHash,
		newUser.Role,
	).Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	newUser.IsActive = true
	return newUser, nil
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, id int64, username string, role user.Role, passwordHash *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET username = $2,
			role = $3,
			password_hash = COALESCE($4, password_hash),
			updated_at = NOW()
		WHERE id = $1 AND is_active = true
	`

	tag, err := q.Exec(ctx, query, id, username, role, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// SoftDelete implements user.UserRepository.
func (r *userRepository) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND is_active = true
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

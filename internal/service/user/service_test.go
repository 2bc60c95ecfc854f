package user

import (
	"context"
	"testing"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[int64]user.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]user.User)}
}

func (f *fakeUserRepo) ListActive(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetActiveByID(ctx context.Context, id int64) (user.User, error) {
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetActiveByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.IsActive && u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsActiveUsername(ctx context.Context, username string, excludeID *int64) (bool, error) {
	for _, u := range f.users {
		if !u.IsActive || u.Username != username {
			continue
		}
		if excludeID != nil && u.ID == *excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.nextID++
	newUser.ID = f.nextID
	newUser.IsActive = true
	newUser.CreatedAt = time.Now()
	newUser.UpdatedAt = newUser.CreatedAt
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id int64, username string, role user.Role, passwordHash *string) error {
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return user.ErrUserNotFound
	}
	u.Username = username
	u.Role = role
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SoftDelete(ctx context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return user.ErrUserNotFound
	}
	u.IsActive = false
	f.users[id] = u
	return nil
}

func seedUser(repo *fakeUserRepo, username string, role user.Role) user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	u, _ := repo.Create(context.Background(), user.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
	return u
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with hashed password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(nil, repo)

		resp, err := svc.Create(ctx, user.CreateUserRequest{
			Username: "scanner1",
			Password: "secret123",
			Role:     "scanner",
		})
		require.NoError(t, err)
		assert.Equal(t, "scanner1", resp.Username)
		assert.Equal(t, "scanner", resp.Role)

		stored := repo.users[resp.ID]
		assert.NotEqual(t, "secret123", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		repo := newFakeUserRepo()
		seedUser(repo, "scanner1", user.RoleScanner)
		svc := NewUserService(nil, repo)

		_, err := svc.Create(ctx, user.CreateUserRequest{
			Username: "scanner1",
			Password: "secret123",
			Role:     "viewer",
		})
		assert.ErrorIs(t, err, user.ErrUsernameExists)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(nil, repo)

		cases := []user.CreateUserRequest{
			{Username: "has space", Password: "secret123", Role: "viewer"},
			{Username: "short", Password: "12345", Role: "viewer"},
			{Username: "badrole", Password: "secret123", Role: "root"},
		}
		for _, req := range cases {
			_, err := svc.Create(ctx, req)
			assert.Error(t, err)
		}
	})
}

func TestSuperAdminLock(t *testing.T) {
	ctx := context.Background()

	repo := newFakeUserRepo()
	admin := seedUser(repo, "root", user.RoleSuperAdmin)
	svc := NewUserService(nil, repo)

	_, err := svc.Update(ctx, user.UpdateUserRequest{
		ID:       admin.ID,
		Username: "root2",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, user.ErrSuperAdminLocked)

	err = svc.Delete(ctx, admin.ID)
	assert.ErrorIs(t, err, user.ErrSuperAdminLocked)

	// Regular users remain editable.
	scanner := seedUser(repo, "scanner1", user.RoleScanner)
	resp, err := svc.Update(ctx, user.UpdateUserRequest{
		ID:       scanner.ID,
		Username: "scanner1",
		Role:     "viewer",
	})
	require.NoError(t, err)
	assert.Equal(t, "viewer", resp.Role)

	require.NoError(t, svc.Delete(ctx, scanner.ID))
	_, err = svc.Get(ctx, scanner.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

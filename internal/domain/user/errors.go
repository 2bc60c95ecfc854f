package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameExists   = errors.New("a user with this username already exists")
	ErrSuperAdminLocked = errors.New("super administrators cannot be modified or deleted")
)

package auth

import "errors"

var (
	ErrInvalidCredentials       = errors.New("invalid username or password")
	ErrInvalidToken             = errors.New("invalid or expired token")
	ErrUserInactive             = errors.New("user is inactive")
	ErrCurrentPasswordRequired  = errors.New("current password is required to change the password")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
)

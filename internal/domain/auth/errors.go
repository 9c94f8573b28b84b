package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRoleMismatch       = errors.New("account does not have the selected role")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

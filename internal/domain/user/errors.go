package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrProfileOwnerRequired    = errors.New("only the profile owner can edit it")
	ErrInvalidPhotoType        = errors.New("invalid photo type: only jpg, jpeg, png allowed")
)

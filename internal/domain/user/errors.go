package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrAccessDenied = errors.New("your role does not allow this action")
)

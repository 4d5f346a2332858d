package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidFullName    = errors.New("full name must be between 1 and 100 characters")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrPhoneAlreadyExists = errors.New("phone number is already in use")
)

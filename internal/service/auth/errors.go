package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrInvalidRole        = errors.New("role must be customer or partner")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrOTPExpired         = errors.New("OTP has expired or does not exist")
	ErrOTPInvalid         = errors.New("OTP code is incorrect")
	ErrOTPMaxAttempts     = errors.New("too many incorrect OTP attempts")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrEmailNotVerified   = errors.New("email address is not verified")
	ErrAccountLocked      = errors.New("account temporarily locked due to repeated login failures")
	ErrResetTokenInvalid  = errors.New("password reset token is invalid or expired")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

package domain

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailNotFound        = errors.New("email not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrEmailOrUsernameTaken = errors.New("email or username already exists")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidState         = errors.New("selected state is invalid")
	ErrWeakPassword         = errors.New("password does not meet security requirements")
)

// One-time-code errors
var (
	ErrCodeInvalidOrExpired = errors.New("invalid or expired code")
	ErrDeliveryFailed       = errors.New("failed to send code")
)

// Token errors
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

// Record errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrLogNotFound     = errors.New("daily log not found")
)

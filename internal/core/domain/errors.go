package domain

import "errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("access forbidden")
	ErrInvalidSession   = errors.New("invalid session")
	ErrUserNotFound     = errors.New("user not found")
	ErrStoreUnavailable = errors.New("database not available")
	ErrMissingOpenID    = errors.New("openId missing from user info")
	ErrCodeAlreadyUsed  = errors.New("authorization code already used")

	// ErrNotifierNotConfigured signals a deployment defect, never a
	// transient delivery failure.
	ErrNotifierNotConfigured = errors.New("notification service is not configured")
	ErrStorageNotConfigured  = errors.New("object storage is not configured")
)

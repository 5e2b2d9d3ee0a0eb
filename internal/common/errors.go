package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal         = errors.New("internal error")
	ErrorUnauthorized     = errors.New("unauthorized")
	ErrorPermissionDenied = errors.New("permission denied")
	ErrorInvalidArgument  = errors.New("invalid argument")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Credential errors reported by the identity service.
	ErrWrongPassword       = errors.New("wrong password")
	ErrInvalidCredential   = errors.New("invalid credential")
	ErrUserMismatch        = errors.New("credential does not belong to the signed-in user")
	ErrRequiresRecentLogin = errors.New("requires recent login")
	ErrWeakPassword        = errors.New("weak password")
)

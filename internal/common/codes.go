package common

import "errors"

// Error codes exchanged between the identity/document services and their
// clients. They travel as gRPC status messages and as the "code" field of
// REST error bodies.
const (
	CodeWrongPassword       = "auth/wrong-password"
	CodeInvalidCredential   = "auth/invalid-credential"
	CodeRequiresRecentLogin = "auth/requires-recent-login"
	CodeUserMismatch        = "auth/user-mismatch"
	CodeUserNotFound        = "auth/user-not-found"
	CodeWeakPassword        = "auth/weak-password"
	CodeTokenExpired        = "auth/user-token-expired"
	CodeInvalidToken        = "auth/invalid-token"
	CodeRefreshTokenExpired = "auth/refresh-token-expired"
	CodeNotFound            = "not-found"
	CodePermissionDenied    = "permission-denied"
	CodeInvalidArgument     = "invalid-argument"
	CodeUnauthenticated     = "unauthenticated"
	CodeInternal            = "internal"
)

var codeTable = []struct {
	err  error
	code string
}{
	{ErrWrongPassword, CodeWrongPassword},
	{ErrInvalidCredential, CodeInvalidCredential},
	{ErrRequiresRecentLogin, CodeRequiresRecentLogin},
	{ErrUserMismatch, CodeUserMismatch},
	{ErrWeakPassword, CodeWeakPassword},
	{ErrTokenExpired, CodeTokenExpired},
	{ErrInvalidToken, CodeInvalidToken},
	{ErrRefreshTokenExpired, CodeRefreshTokenExpired},
	{ErrorNotFound, CodeNotFound},
	{ErrorPermissionDenied, CodePermissionDenied},
	{ErrorInvalidArgument, CodeInvalidArgument},
	{ErrorUnauthorized, CodeUnauthenticated},
	{ErrorInternal, CodeInternal},
}

// CodeOf returns the wire code for err. Errors outside the vocabulary
// collapse to CodeInternal so that internals never leak to callers.
func CodeOf(err error) string {
	for _, e := range codeTable {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return CodeInternal
}

// ErrorFromCode is the inverse of CodeOf. Unknown codes yield nil.
// CodeUserNotFound shares ErrorNotFound with CodeNotFound.
func ErrorFromCode(code string) error {
	if code == CodeUserNotFound {
		return ErrorNotFound
	}
	for _, e := range codeTable {
		if e.code == code {
			return e.err
		}
	}
	return nil
}

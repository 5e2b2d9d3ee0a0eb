// Package client talks to the admin settings server over gRPC.
//
// GRPCClient keeps the session tokens of one signed-in user. A unary
// interceptor attaches the access token to every call and, when the server
// answers auth/user-token-expired, rotates the token pair once and retries.
// Reauthenticate and UpdatePassword also replace the pair, since the server
// issues a fresh session for both.
//
// GRPCClient satisfies settings.IdentityService and settings.DocumentStore.
// Status messages carry the error codes of internal/common and are mapped
// back to the sentinels, so callers match failures with errors.Is.
package client

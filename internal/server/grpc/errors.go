package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var statusCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrWrongPassword, codes.Unauthenticated},
	{common.ErrInvalidCredential, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrRefreshTokenExpired, codes.Unauthenticated},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrUserMismatch, codes.InvalidArgument},
	{common.ErrWeakPassword, codes.InvalidArgument},
	{common.ErrorInvalidArgument, codes.InvalidArgument},
	{common.ErrRequiresRecentLogin, codes.FailedPrecondition},
	{common.ErrorPermissionDenied, codes.PermissionDenied},
	{common.ErrorNotFound, codes.NotFound},
}

// toStatus converts a service error to a status whose message is the
// error code. Unknown errors are logged and reported as internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	for _, e := range statusCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, common.CodeOf(err))
		}
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.CodeInternal)
}

package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	pb "github.com/dmitrijs2005/adminsettings/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestInterceptor_PublicMethodsSkipToken(t *testing.T) {
	s := newTestServer(&fakeIdentity{}, &fakeProfiles{})

	for _, m := range []string{pb.Identity_Ping_FullMethodName, pb.Identity_SignIn_FullMethodName, pb.Identity_RefreshToken_FullMethodName} {
		called := false
		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			called = true
			_, ok := claimsFromContext(ctx)
			assert.False(t, ok)
			return "ok", nil
		}

		resp, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: m}, h)
		require.NoError(t, err, m)
		assert.True(t, called, m)
		assert.Equal(t, "ok", resp)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer(&fakeIdentity{}, &fakeProfiles{})

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: pb.Identity_CurrentUser_FullMethodName}, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, common.CodeUnauthenticated, status.Convert(err).Message())
}

func TestInterceptor_TokenErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "garbage", token: "not-a-valid-jwt", want: common.CodeInvalidToken},
		{name: "expired", token: mustToken(time.Now(), -time.Second), want: common.CodeTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(&fakeIdentity{}, &fakeProfiles{})
			ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, tt.token))

			h := func(ctx context.Context, req interface{}) (interface{}, error) {
				t.Fatal("handler should not be called")
				return nil, nil
			}

			_, err := s.accessTokenInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: pb.Profiles_GetProfile_FullMethodName}, h)
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
			assert.Equal(t, tt.want, status.Convert(err).Message())
		})
	}
}

func TestInterceptor_ValidTokenPutsClaimsInContext(t *testing.T) {
	s := newTestServer(&fakeIdentity{}, &fakeProfiles{})
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, mustToken(time.Now(), time.Hour)))

	var gotUserID string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		c, ok := claimsFromContext(ctx)
		require.True(t, ok)
		gotUserID = c.UserID
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: pb.Profiles_UpdateProfile_FullMethodName}, h)
	require.NoError(t, err)
	assert.Equal(t, "u1", gotUserID)
}

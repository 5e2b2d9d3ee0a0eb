package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/adminsettings/internal/client/settings"
	"github.com/dmitrijs2005/adminsettings/internal/common"
	pb "github.com/dmitrijs2005/adminsettings/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	dialOptions []grpc.DialOption

	conn     *grpc.ClientConn
	identity pb.IdentityClient
	profiles pb.ProfilesClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	accessToken, refreshToken := s.tokens()
	err := invoker(withAccessToken(ctx, accessToken), method, req, reply, cc, opts...)

	if err == nil || method == pb.Identity_RefreshToken_FullMethodName {
		return err
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	if st.Code() != codes.Unauthenticated || st.Message() != common.CodeTokenExpired {
		return err
	}

	if refreshToken == "" {
		return err
	}

	refreshTokenResponse, err := s.identity.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}

	s.setTokens(refreshTokenResponse.AccessToken, refreshTokenResponse.RefreshToken)

	// retry once with the rotated access token
	return invoker(withAccessToken(ctx, refreshTokenResponse.AccessToken), method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to endpointURL. timeout bounds every call;
// zero disables it.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout, dialOptions: opts}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOptions...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.identity = pb.NewIdentityClient(conn)
	s.profiles = pb.NewProfilesClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) requireSession() error {
	if access, _ := s.tokens(); access == "" {
		return ErrNotSignedIn
	}
	return nil
}

func toIdentity(u *pb.User) *settings.Identity {
	if u == nil {
		return nil
	}
	return &settings.Identity{UID: u.Id, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.identity.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

// SignIn starts a session and returns the signed-in identity.
func (s *GRPCClient) SignIn(ctx context.Context, email, password string) (*settings.Identity, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.identity.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return toIdentity(resp.User), nil
}

// SignOut forgets the session tokens.
func (s *GRPCClient) SignOut() {
	s.setTokens("", "")
}

func (s *GRPCClient) CurrentUser(ctx context.Context) (*settings.Identity, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.identity.CurrentUser(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return toIdentity(resp.User), nil
}

func (s *GRPCClient) Reauthenticate(ctx context.Context, cred settings.Credential) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.identity.Reauthenticate(ctx, &pb.ReauthenticateRequest{Email: cred.Email, Password: cred.Password})
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) UpdatePassword(ctx context.Context, newPassword string) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.identity.UpdatePassword(ctx, &pb.UpdatePasswordRequest{NewPassword: newPassword})
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) GetProfile(ctx context.Context, uid string) (*settings.ProfileRecord, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.profiles.GetProfile(ctx, &pb.GetProfileRequest{UserId: uid})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Profile == nil {
		return nil, common.ErrorNotFound
	}

	p := resp.Profile
	return &settings.ProfileRecord{FirstName: p.FirstName, LastName: p.LastName, UpdatedAt: p.UpdatedAt}, nil
}

func (s *GRPCClient) MergeProfile(ctx context.Context, uid string, patch settings.ProfilePatch) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	req := &pb.UpdateProfileRequest{
		UserId:    uid,
		FirstName: patch.FirstName,
		LastName:  patch.LastName,
		UpdatedAt: patch.UpdatedAt,
	}
	if _, err := s.profiles.UpdateProfile(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

// mapError turns a status error into the sentinel named by its message.
// An expired refresh token means the session must be re-established, which
// callers see as common.ErrRequiresRecentLogin.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	}

	mapped := common.ErrorFromCode(st.Message())
	switch {
	case mapped == nil:
		return fmt.Errorf("rpc error: %w", err)
	case errors.Is(mapped, common.ErrRefreshTokenExpired):
		return fmt.Errorf("%w: %w", common.ErrRequiresRecentLogin, mapped)
	default:
		return mapped
	}
}

package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	Identity_Ping_FullMethodName           = "/adminsettings.v1.Identity/Ping"
	Identity_SignIn_FullMethodName         = "/adminsettings.v1.Identity/SignIn"
	Identity_RefreshToken_FullMethodName   = "/adminsettings.v1.Identity/RefreshToken"
	Identity_Reauthenticate_FullMethodName = "/adminsettings.v1.Identity/Reauthenticate"
	Identity_UpdatePassword_FullMethodName = "/adminsettings.v1.Identity/UpdatePassword"
	Identity_CurrentUser_FullMethodName    = "/adminsettings.v1.Identity/CurrentUser"
)

// IdentityClient is the client API for the Identity service.
type IdentityClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error)
	SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Reauthenticate(ctx context.Context, in *ReauthenticateRequest, opts ...grpc.CallOption) (*ReauthenticateResponse, error)
	UpdatePassword(ctx context.Context, in *UpdatePasswordRequest, opts ...grpc.CallOption) (*UpdatePasswordResponse, error)
	CurrentUser(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*CurrentUserResponse, error)
}

type identityClient struct {
	cc grpc.ClientConnInterface
}

func NewIdentityClient(cc grpc.ClientConnInterface) IdentityClient {
	return &identityClient{cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(Codec)}, opts...)
}

func (c *identityClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.cc.Invoke(ctx, Identity_Ping_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *identityClient) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error) {
	out := new(SignInResponse)
	if err := c.cc.Invoke(ctx, Identity_SignIn_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *identityClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	out := new(RefreshTokenResponse)
	if err := c.cc.Invoke(ctx, Identity_RefreshToken_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *identityClient) Reauthenticate(ctx context.Context, in *ReauthenticateRequest, opts ...grpc.CallOption) (*ReauthenticateResponse, error) {
	out := new(ReauthenticateResponse)
	if err := c.cc.Invoke(ctx, Identity_Reauthenticate_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *identityClient) UpdatePassword(ctx context.Context, in *UpdatePasswordRequest, opts ...grpc.CallOption) (*UpdatePasswordResponse, error) {
	out := new(UpdatePasswordResponse)
	if err := c.cc.Invoke(ctx, Identity_UpdatePassword_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *identityClient) CurrentUser(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*CurrentUserResponse, error) {
	out := new(CurrentUserResponse)
	if err := c.cc.Invoke(ctx, Identity_CurrentUser_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// IdentityServer is the server API for the Identity service.
type IdentityServer interface {
	Ping(context.Context, *emptypb.Empty) (*PingResponse, error)
	SignIn(context.Context, *SignInRequest) (*SignInResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Reauthenticate(context.Context, *ReauthenticateRequest) (*ReauthenticateResponse, error)
	UpdatePassword(context.Context, *UpdatePasswordRequest) (*UpdatePasswordResponse, error)
	CurrentUser(context.Context, *emptypb.Empty) (*CurrentUserResponse, error)
}

// UnimplementedIdentityServer can be embedded to satisfy IdentityServer
// partially, e.g. in tests.
type UnimplementedIdentityServer struct{}

func (UnimplementedIdentityServer) Ping(context.Context, *emptypb.Empty) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedIdentityServer) SignIn(context.Context, *SignInRequest) (*SignInResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SignIn not implemented")
}
func (UnimplementedIdentityServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedIdentityServer) Reauthenticate(context.Context, *ReauthenticateRequest) (*ReauthenticateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Reauthenticate not implemented")
}
func (UnimplementedIdentityServer) UpdatePassword(context.Context, *UpdatePasswordRequest) (*UpdatePasswordResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePassword not implemented")
}
func (UnimplementedIdentityServer) CurrentUser(context.Context, *emptypb.Empty) (*CurrentUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CurrentUser not implemented")
}

func RegisterIdentityServer(s grpc.ServiceRegistrar, srv IdentityServer) {
	s.RegisterService(&Identity_ServiceDesc, srv)
}

func _Identity_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IdentityServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Identity_Ping_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IdentityServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Identity_SignIn_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SignInRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IdentityServer).SignIn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Identity_SignIn_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IdentityServer).SignIn(ctx, req.(*SignInRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Identity_RefreshToken_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RefreshTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IdentityServer).RefreshToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Identity_RefreshToken_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IdentityServer).RefreshToken(ctx, req.(*RefreshTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Identity_Reauthenticate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReauthenticateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IdentityServer).Reauthenticate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Identity_Reauthenticate_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IdentityServer).Reauthenticate(ctx, req.(*ReauthenticateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Identity_UpdatePassword_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdatePasswordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IdentityServer).UpdatePassword(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Identity_UpdatePassword_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IdentityServer).UpdatePassword(ctx, req.(*UpdatePasswordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Identity_CurrentUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IdentityServer).CurrentUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Identity_CurrentUser_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IdentityServer).CurrentUser(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Identity_ServiceDesc is the grpc.ServiceDesc for the Identity service.
var Identity_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "adminsettings.v1.Identity",
	HandlerType: (*IdentityServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: _Identity_Ping_Handler},
		{MethodName: "SignIn", Handler: _Identity_SignIn_Handler},
		{MethodName: "RefreshToken", Handler: _Identity_RefreshToken_Handler},
		{MethodName: "Reauthenticate", Handler: _Identity_Reauthenticate_Handler},
		{MethodName: "UpdatePassword", Handler: _Identity_UpdatePassword_Handler},
		{MethodName: "CurrentUser", Handler: _Identity_CurrentUser_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "adminsettings/v1/identity.proto",
}

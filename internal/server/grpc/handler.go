package grpc

import (
	"context"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	pb "github.com/dmitrijs2005/adminsettings/internal/proto"
	"github.com/dmitrijs2005/adminsettings/internal/server/auth"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/dmitrijs2005/adminsettings/internal/server/services"
	"github.com/dmitrijs2005/adminsettings/internal/timex"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func toUser(id models.Identity) *pb.User {
	return &pb.User{Id: id.UserID, Email: id.Email, FirstName: id.FirstName, LastName: id.LastName}
}

func (s *GRPCServer) caller(ctx context.Context) (*auth.Claims, error) {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, common.CodeUnauthenticated)
	}
	return claims, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *emptypb.Empty) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {

	session, err := s.identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.SignInResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		User:         toUser(session.Identity),
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	session, err := s.identity.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RefreshTokenResponse{AccessToken: session.AccessToken, RefreshToken: session.RefreshToken}, nil
}

func (s *GRPCServer) Reauthenticate(ctx context.Context, req *pb.ReauthenticateRequest) (*pb.ReauthenticateResponse, error) {
	claims, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	session, err := s.identity.Reauthenticate(ctx, claims.UserID, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.ReauthenticateResponse{AccessToken: session.AccessToken, RefreshToken: session.RefreshToken}, nil
}

func (s *GRPCServer) UpdatePassword(ctx context.Context, req *pb.UpdatePasswordRequest) (*pb.UpdatePasswordResponse, error) {
	claims, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	session, err := s.identity.UpdatePassword(ctx, claims.UserID, claims.AuthenticatedAt(), req.NewPassword)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.UpdatePasswordResponse{AccessToken: session.AccessToken, RefreshToken: session.RefreshToken}, nil
}

func (s *GRPCServer) CurrentUser(ctx context.Context, req *emptypb.Empty) (*pb.CurrentUserResponse, error) {
	claims, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.identity.CurrentUser(ctx, claims.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.CurrentUserResponse{User: toUser(id)}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	claims, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.Get(ctx, claims.UserID, req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.GetProfileResponse{Profile: &pb.Profile{
		UserId:    p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		UpdatedAt: timex.FormatISO(p.UpdatedAt),
	}}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	claims, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	upd := services.ProfileUpdate{FirstName: req.FirstName, LastName: req.LastName, UpdatedAt: req.UpdatedAt}
	if err := s.profiles.Merge(ctx, claims.UserID, req.UserId, upd); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.UpdateProfileResponse{}, nil
}

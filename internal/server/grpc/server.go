// Package grpc exposes the identity and profile services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/adminsettings/internal/logging"
	pb "github.com/dmitrijs2005/adminsettings/internal/proto"
	"github.com/dmitrijs2005/adminsettings/internal/server/auth"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/dmitrijs2005/adminsettings/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// IdentityService is the part of services.IdentityService served here.
type IdentityService interface {
	SignIn(ctx context.Context, email, password string) (*services.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.Session, error)
	Reauthenticate(ctx context.Context, userID, email, password string) (*services.Session, error)
	UpdatePassword(ctx context.Context, userID string, authTime time.Time, newPassword string) (*services.Session, error)
	CurrentUser(ctx context.Context, userID string) (models.Identity, error)
	ParseAccessToken(token string) (*auth.Claims, error)
}

// ProfileService is the part of services.ProfileService served here.
type ProfileService interface {
	Get(ctx context.Context, callerID, userID string) (*models.Profile, error)
	Merge(ctx context.Context, callerID, userID string, upd services.ProfileUpdate) error
}

type GRPCServer struct {
	address  string
	identity IdentityService
	profiles ProfileService
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, identity IdentityService, profiles ProfileService) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		identity: identity,
		profiles: profiles,
	}
}

// newServer builds the grpc.Server with both services and the standard
// health service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterIdentityServer(srv, s)
	pb.RegisterProfilesServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

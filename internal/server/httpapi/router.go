// Package httpapi is the REST gateway: the same identity and profile
// services as the gRPC endpoint, served with gin under /api/v1.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/adminsettings/internal/logging"
	"github.com/dmitrijs2005/adminsettings/internal/server/auth"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/dmitrijs2005/adminsettings/internal/server/services"
	"github.com/gin-gonic/gin"
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

// Handler holds the gin handlers.
type Handler struct {
	identity IdentityService
	profiles ProfileService
	logger   logging.Logger
}

func NewHandler(identity IdentityService, profiles ProfileService, logger logging.Logger) *Handler {
	return &Handler{identity: identity, profiles: profiles, logger: logger}
}

// NewRouter wires the routes onto a fresh gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/signin", h.SignIn)
		api.POST("/auth/refresh", h.Refresh)

		authed := api.Group("", h.bearerAuth())
		authed.POST("/auth/reauthenticate", h.Reauthenticate)
		authed.PUT("/auth/password", h.UpdatePassword)
		authed.GET("/me", h.Me)
		authed.GET("/profiles/:id", h.GetProfile)
		authed.PATCH("/profiles/:id", h.PatchProfile)
	}

	return r
}

// Server runs the gateway until its context is cancelled.
type Server struct {
	address string
	handler http.Handler
	logger  logging.Logger
}

func NewServer(address string, h *Handler, logger logging.Logger) *Server {
	return &Server{address: address, handler: NewRouter(h), logger: logger.With("module", "http_server")}
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.handler, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

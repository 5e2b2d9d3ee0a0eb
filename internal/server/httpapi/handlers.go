package httpapi

import (
	"fmt"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	pb "github.com/dmitrijs2005/adminsettings/internal/proto"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/dmitrijs2005/adminsettings/internal/server/services"
	"github.com/dmitrijs2005/adminsettings/internal/timex"
	"github.com/gin-gonic/gin"
)

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type passwordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

type patchProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	UpdatedAt string  `json:"updated_at" binding:"required"`
}

func toUser(id models.Identity) *pb.User {
	return &pb.User{Id: id.UserID, Email: id.Email, FirstName: id.FirstName, LastName: id.LastName}
}

func (h *Handler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", common.ErrorInvalidArgument, err))
		return false
	}
	return true
}

// SignIn handles POST /api/v1/auth/signin
func (h *Handler) SignIn(c *gin.Context) {
	var req signInRequest
	if !h.bind(c, &req) {
		return
	}

	session, err := h.identity.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	ok(c, &pb.SignInResponse{AccessToken: session.AccessToken, RefreshToken: session.RefreshToken, User: toUser(session.Identity)})
}

// Refresh handles POST /api/v1/auth/refresh
func (h *Handler) Refresh(c *gin.Context) {
	var req refreshRequest
	if !h.bind(c, &req) {
		return
	}

	session, err := h.identity.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.fail(c, err)
		return
	}

	ok(c, &pb.RefreshTokenResponse{AccessToken: session.AccessToken, RefreshToken: session.RefreshToken})
}

// Reauthenticate handles POST /api/v1/auth/reauthenticate
func (h *Handler) Reauthenticate(c *gin.Context) {
	var req signInRequest
	if !h.bind(c, &req) {
		return
	}

	claims := callerClaims(c)
	session, err := h.identity.Reauthenticate(c.Request.Context(), claims.UserID, req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	ok(c, &pb.ReauthenticateResponse{AccessToken: session.AccessToken, RefreshToken: session.RefreshToken})
}

// UpdatePassword handles PUT /api/v1/auth/password
func (h *Handler) UpdatePassword(c *gin.Context) {
	var req passwordRequest
	if !h.bind(c, &req) {
		return
	}

	claims := callerClaims(c)
	session, err := h.identity.UpdatePassword(c.Request.Context(), claims.UserID, claims.AuthenticatedAt(), req.NewPassword)
	if err != nil {
		h.fail(c, err)
		return
	}

	ok(c, &pb.UpdatePasswordResponse{AccessToken: session.AccessToken, RefreshToken: session.RefreshToken})
}

// Me handles GET /api/v1/me
func (h *Handler) Me(c *gin.Context) {
	id, err := h.identity.CurrentUser(c.Request.Context(), callerClaims(c).UserID)
	if err != nil {
		h.fail(c, err)
		return
	}

	ok(c, &pb.CurrentUserResponse{User: toUser(id)})
}

// GetProfile handles GET /api/v1/profiles/:id
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context(), callerClaims(c).UserID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	ok(c, &pb.Profile{UserId: p.UserID, FirstName: p.FirstName, LastName: p.LastName, UpdatedAt: timex.FormatISO(p.UpdatedAt)})
}

// PatchProfile handles PATCH /api/v1/profiles/:id
func (h *Handler) PatchProfile(c *gin.Context) {
	var req patchProfileRequest
	if !h.bind(c, &req) {
		return
	}

	upd := services.ProfileUpdate{FirstName: req.FirstName, LastName: req.LastName, UpdatedAt: req.UpdatedAt}
	if err := h.profiles.Merge(c.Request.Context(), callerClaims(c).UserID, c.Param("id"), upd); err != nil {
		h.fail(c, err)
		return
	}

	ok(c, gin.H{})
}

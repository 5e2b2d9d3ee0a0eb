package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/gin-gonic/gin"
)

var httpStatuses = []struct {
	err    error
	status int
}{
	{common.ErrWrongPassword, http.StatusUnauthorized},
	{common.ErrInvalidCredential, http.StatusUnauthorized},
	{common.ErrTokenExpired, http.StatusUnauthorized},
	{common.ErrInvalidToken, http.StatusUnauthorized},
	{common.ErrRefreshTokenExpired, http.StatusUnauthorized},
	{common.ErrorUnauthorized, http.StatusUnauthorized},
	{common.ErrUserMismatch, http.StatusBadRequest},
	{common.ErrWeakPassword, http.StatusBadRequest},
	{common.ErrorInvalidArgument, http.StatusBadRequest},
	{common.ErrRequiresRecentLogin, http.StatusForbidden},
	{common.ErrorPermissionDenied, http.StatusForbidden},
	{common.ErrorNotFound, http.StatusNotFound},
}

var messages = map[string]string{
	common.CodeWrongPassword:       "wrong password",
	common.CodeInvalidCredential:   "invalid email or password",
	common.CodeRequiresRecentLogin: "recent sign-in required",
	common.CodeUserMismatch:        "credential does not belong to the signed-in user",
	common.CodeWeakPassword:        "password is too weak",
	common.CodeTokenExpired:        "access token expired",
	common.CodeInvalidToken:        "invalid access token",
	common.CodeRefreshTokenExpired: "refresh token expired",
	common.CodeNotFound:            "not found",
	common.CodePermissionDenied:    "permission denied",
	common.CodeInvalidArgument:     "invalid argument",
	common.CodeUnauthenticated:     "authentication required",
	common.CodeInternal:            "internal error",
}

// fail aborts the request with the error body. Errors outside the code
// vocabulary are logged and reported as internal.
func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	for _, e := range httpStatuses {
		if errors.Is(err, e.err) {
			status = e.status
			break
		}
	}
	if status == http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}

	code := common.CodeOf(err)
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": messages[code],
		},
	})
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

package httpapi

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/dmitrijs2005/adminsettings/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// bearerAuth accepts "Authorization: Bearer <token>" and, like the gRPC
// endpoint, the access_token header.
func (h *Handler) bearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(common.AccessTokenHeaderName)
		if authz := c.GetHeader("Authorization"); token == "" && authz != "" {
			scheme, value, ok := strings.Cut(authz, " ")
			if ok && strings.EqualFold(scheme, "Bearer") {
				token = strings.TrimSpace(value)
			}
		}
		if token == "" {
			h.fail(c, common.ErrorUnauthorized)
			return
		}

		claims, err := h.identity.ParseAccessToken(token)
		if err != nil {
			h.fail(c, err)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func callerClaims(c *gin.Context) *auth.Claims {
	v, _ := c.Get(claimsKey)
	claims, _ := v.(*auth.Claims)
	return claims
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Debug(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

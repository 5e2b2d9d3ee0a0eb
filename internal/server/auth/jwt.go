// Package auth issues and verifies the HS256 access tokens handed to
// clients after sign-in.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the user id, the profile-name claims shown by clients and
// the time the session last proved the password.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"uid"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	AuthTime  int64  `json:"auth_time"`
}

// Identity returns the claims as the identity seen by clients.
func (c *Claims) Identity() models.Identity {
	return models.Identity{UserID: c.UserID, Email: c.Email, FirstName: c.FirstName, LastName: c.LastName}
}

// AuthenticatedAt returns the auth_time claim.
func (c *Claims) AuthenticatedAt() time.Time {
	return time.Unix(c.AuthTime, 0)
}

func GenerateToken(id models.Identity, authTime time.Time, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:    id.UserID,
		Email:     id.Email,
		FirstName: id.FirstName,
		LastName:  id.LastName,
		AuthTime:  authTime.Unix(),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry. Expired tokens yield
// common.ErrTokenExpired, anything else unusable common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// Package users declares the account repository used by the identity
// service and its PostgreSQL implementation.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/adminsettings/internal/server/models"
)

type Repository interface {
	// Create inserts the user. Duplicate emails are reported as errors.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByID and GetByEmail return common.ErrorNotFound for unknown users.
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdatePasswordHash replaces the stored hash; unknown ids yield
	// common.ErrorNotFound.
	UpdatePasswordHash(ctx context.Context, id string, hash string, at time.Time) error
}

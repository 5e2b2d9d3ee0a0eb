// Package profiles stores the per-user profile documents edited from the
// settings screen. Three backends share one contract: PostgreSQL, Redis
// and an S3-compatible object store.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/adminsettings/internal/server/models"
)

// Repository is the document store for profiles.
type Repository interface {
	// Get returns common.ErrorNotFound when no profile exists for userID.
	Get(ctx context.Context, userID string) (*models.Profile, error)

	// Create stores a fresh profile document, replacing nothing.
	Create(ctx context.Context, profile *models.Profile) error

	// Merge applies patch to an existing profile. It never creates a
	// document: a missing profile yields common.ErrorNotFound.
	Merge(ctx context.Context, userID string, patch models.ProfilePatch) error
}

package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/dmitrijs2005/adminsettings/internal/logging"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/adminsettings/internal/timex"
)

// ProfileUpdate is a merge write as received from a transport. UpdatedAt
// is an ISO-8601 timestamp chosen by the client.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	UpdatedAt string
}

// ProfileService is the document store for user profiles. Callers may only
// touch their own document.
type ProfileService struct {
	store  profiles.Repository
	logger logging.Logger
}

func NewProfileService(store profiles.Repository, logger logging.Logger) *ProfileService {
	return &ProfileService{store: store, logger: logger.With("module", "profiles")}
}

func (s *ProfileService) Get(ctx context.Context, callerID, userID string) (*models.Profile, error) {
	if callerID != userID {
		return nil, common.ErrorPermissionDenied
	}

	p, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return p, nil
}

// Merge applies upd to an existing document; a missing one is not created
// and yields common.ErrorNotFound.
func (s *ProfileService) Merge(ctx context.Context, callerID, userID string, upd ProfileUpdate) error {
	if callerID != userID {
		return common.ErrorPermissionDenied
	}

	at, err := timex.ParseISO(upd.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: updatedAt: %v", common.ErrorInvalidArgument, err)
	}

	patch := models.ProfilePatch{FirstName: upd.FirstName, LastName: upd.LastName, UpdatedAt: at}
	if err := s.store.Merge(ctx, userID, patch); err != nil {
		return fmt.Errorf("error merging profile: %w", err)
	}

	s.logger.Debug(ctx, "profile merged", "user_id", userID)
	return nil
}

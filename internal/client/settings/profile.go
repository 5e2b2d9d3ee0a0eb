package settings

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/dmitrijs2005/adminsettings/internal/timex"
)

// Mount loads the persisted profile of the current identity, if any.
func (s *Screen) Mount(ctx context.Context) {
	id, ok := s.currentIdentity()
	if !ok {
		return
	}
	s.loadProfile(ctx, id)
}

// SetIdentity replaces the signed-in identity. When the uid changes the
// form is reset to the new identity's claims and the profile is loaded.
// A nil identity clears the form.
func (s *Screen) SetIdentity(ctx context.Context, identity *Identity) {
	changed := false
	var id Identity

	s.mutate(func() {
		prevUID := ""
		if s.identity != nil {
			prevUID = s.identity.UID
		}

		if identity == nil {
			s.identity = nil
			s.form = FormState{}
			return
		}

		id = *identity
		s.identity = &id
		if id.UID != prevUID {
			changed = true
			s.form = formFromIdentity(&id)
		}
	})

	if changed && id.UID != "" {
		s.loadProfile(ctx, id)
	}
}

func (s *Screen) loadProfile(ctx context.Context, id Identity) {
	rec, err := s.documents.GetProfile(ctx, id.UID)
	if errors.Is(err, common.ErrorNotFound) || (err == nil && rec == nil) {
		return
	}
	if err != nil {
		s.logger.Error(ctx, "Error fetching user data", "uid", id.UID, "error", err)
		s.notifier.Error(MsgLoadFailed)
		return
	}

	s.mutate(func() {
		// the identity may have changed while the fetch was in flight
		if s.identity == nil || s.identity.UID != id.UID {
			return
		}
		s.form.FirstName = rec.FirstName
		s.form.LastName = rec.LastName
		s.form.Email = id.Email
	})
}

// SubmitProfile merge-writes the first and last name with a fresh
// timestamp. It is a no-op without an identity or while a previous
// submission is in flight.
func (s *Screen) SubmitProfile(ctx context.Context) {
	id, ok := s.currentIdentity()
	if !ok {
		return
	}

	form := s.Form()
	first := strings.TrimSpace(form.FirstName)
	last := strings.TrimSpace(form.LastName)
	switch {
	case first == "":
		s.notifier.Error(MsgFirstNameRequired)
		return
	case last == "":
		s.notifier.Error(MsgLastNameRequired)
		return
	}

	if !s.tryBusy(&s.profileBusy) {
		return
	}
	defer s.clearBusy(&s.profileBusy)

	patch := ProfilePatch{
		FirstName: &first,
		LastName:  &last,
		UpdatedAt: timex.FormatISO(s.now()),
	}
	if err := s.documents.MergeProfile(ctx, id.UID, patch); err != nil {
		s.logger.Error(ctx, "Error updating profile", "uid", id.UID, "error", err)
		s.notifier.Error(MsgProfileFailed)
		return
	}

	s.notifier.Success(MsgProfileUpdated)
}

package settings

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/adminsettings/internal/common"
)

var errNoEmail = errors.New("identity has no email")

// passwordMessage maps an identity service failure to its toast.
func passwordMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrWrongPassword), errors.Is(err, common.ErrInvalidCredential):
		return MsgWrongPassword
	case errors.Is(err, common.ErrRequiresRecentLogin):
		return MsgRecentLoginRequired
	default:
		return MsgPasswordFailed
	}
}

// SubmitPassword runs validate, reauthenticate, rotate and reset, stopping
// at the first failure. The password fields are cleared only after the new
// password has been set.
func (s *Screen) SubmitPassword(ctx context.Context) {
	id, ok := s.currentIdentity()
	if !ok {
		return
	}

	form := s.Form()
	if form.CurrentPassword == "" || form.NewPassword == "" || form.ConfirmPassword == "" {
		s.notifier.Error(MsgPasswordsRequired)
		return
	}

	if !s.tryBusy(&s.passwordBusy) {
		return
	}
	defer s.clearBusy(&s.passwordBusy)

	if form.NewPassword != form.ConfirmPassword {
		s.notifier.Error(MsgPasswordsMismatch)
		return
	}

	if err := s.rotatePassword(ctx, id, form.CurrentPassword, form.NewPassword); err != nil {
		s.logger.Error(ctx, "Error updating password", "uid", id.UID, "error", err)
		s.notifier.Error(passwordMessage(err))
		return
	}

	s.mutate(func() {
		s.form.clearPasswords()
	})
	s.notifier.Success(MsgPasswordUpdated)
}

func (s *Screen) rotatePassword(ctx context.Context, id Identity, current, next string) error {
	if id.Email == "" {
		return errNoEmail
	}
	if err := s.identitySvc.Reauthenticate(ctx, EmailCredential(id.Email, current)); err != nil {
		return err
	}
	return s.identitySvc.UpdatePassword(ctx, next)
}

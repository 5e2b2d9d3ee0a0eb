package settings

import "context"

// Identity is the signed-in user: its unique id, email and the
// profile-name claims cached in the session.
type Identity struct {
	UID       string
	Email     string
	FirstName string
	LastName  string
}

// Credential is an email and password pair submitted for reauthentication.
type Credential struct {
	Email    string
	Password string
}

// EmailCredential builds a Credential for the email/password provider.
func EmailCredential(email, password string) Credential {
	return Credential{Email: email, Password: password}
}

// ProfileRecord is the persisted profile document.
type ProfileRecord struct {
	FirstName string
	LastName  string
	UpdatedAt string
}

// ProfilePatch is a merge write; nil name fields are left untouched.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	UpdatedAt string
}

// IdentityService reauthenticates the signed-in user and rotates the
// password. Failures carry the common auth sentinels
// (common.ErrWrongPassword, common.ErrRequiresRecentLogin, ...).
type IdentityService interface {
	Reauthenticate(ctx context.Context, cred Credential) error
	UpdatePassword(ctx context.Context, newPassword string) error
}

// DocumentStore reads and merge-writes profile records keyed by user id.
// GetProfile returns common.ErrorNotFound when no record exists.
type DocumentStore interface {
	GetProfile(ctx context.Context, uid string) (*ProfileRecord, error)
	MergeProfile(ctx context.Context, uid string, patch ProfilePatch) error
}

// Notifier shows fire-and-forget toasts.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

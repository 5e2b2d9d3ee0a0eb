package settings

import (
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/adminsettings/internal/logging"
)

// Notification texts.
const (
	MsgLoadFailed          = "Failed to load user data"
	MsgProfileUpdated      = "Profile updated successfully"
	MsgProfileFailed       = "Failed to update profile"
	MsgFirstNameRequired   = "First name is required"
	MsgLastNameRequired    = "Last name is required"
	MsgPasswordsRequired   = "All password fields are required"
	MsgPasswordsMismatch   = "New passwords do not match"
	MsgWrongPassword       = "Current password is incorrect"
	MsgRecentLoginRequired = "Please log out and log back in before changing your password"
	MsgPasswordFailed      = "Failed to update password"
	MsgPasswordUpdated     = "Password updated successfully"
)

// Screen is one mounted settings screen. It is safe for concurrent use;
// collaborators are called without the lock held.
type Screen struct {
	mu       sync.Mutex
	identity *Identity
	form     FormState

	profileBusy        bool
	passwordBusy       bool
	emailNotifications bool

	observers    map[int]func(State)
	nextObserver int

	identitySvc IdentityService
	documents   DocumentStore
	notifier    Notifier
	logger      logging.Logger
	now         func() time.Time
}

// NewScreen pre-populates the form from identity's cached claims.
// identity may be nil while nobody is signed in.
func NewScreen(identity *Identity, identitySvc IdentityService, documents DocumentStore, notifier Notifier, logger logging.Logger) *Screen {
	s := &Screen{
		identitySvc: identitySvc,
		documents:   documents,
		notifier:    notifier,
		logger:      logger,
		observers:   make(map[int]func(State)),
		now:         time.Now,
	}
	if identity != nil {
		id := *identity
		s.identity = &id
	}
	s.form = formFromIdentity(s.identity)
	return s
}

// Form returns a copy of the form.
func (s *Screen) Form() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// State returns a copy of the form together with the flags.
func (s *Screen) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Screen) stateLocked() State {
	return State{
		Form:               s.form,
		ProfileBusy:        s.profileBusy,
		PasswordBusy:       s.passwordBusy,
		EmailNotifications: s.emailNotifications,
	}
}

// Identity returns the current identity, or nil.
func (s *Screen) Identity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

func (s *Screen) ProfileBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileBusy
}

func (s *Screen) PasswordBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.passwordBusy
}

// Subscribe registers fn to receive the state after every mutation.
// The returned func removes it.
func (s *Screen) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// mutate applies fn under the lock and then notifies observers.
func (s *Screen) mutate(fn func()) {
	s.mu.Lock()
	fn()
	st := s.stateLocked()
	observers := make([]func(State), 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.mu.Unlock()

	for _, o := range observers {
		o(st)
	}
}

// SetField stores value into the named form field.
func (s *Screen) SetField(name, value string) error {
	var err error
	s.mutate(func() {
		var dst *string
		dst, err = s.form.field(name)
		if err == nil {
			*dst = value
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %s", err, name)
	}
	return nil
}

// ToggleEmailNotifications flips the notification checkbox and returns
// the new value. The preference is screen-local: it is neither persisted
// nor sent anywhere.
func (s *Screen) ToggleEmailNotifications() bool {
	var v bool
	s.mutate(func() {
		s.emailNotifications = !s.emailNotifications
		v = s.emailNotifications
	})
	return v
}

func (s *Screen) EmailNotifications() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emailNotifications
}

// tryBusy sets *flag unless it is already set.
func (s *Screen) tryBusy(flag *bool) bool {
	acquired := false
	s.mutate(func() {
		if !*flag {
			*flag = true
			acquired = true
		}
	})
	return acquired
}

func (s *Screen) clearBusy(flag *bool) {
	s.mutate(func() { *flag = false })
}

// currentIdentity returns a copy of the identity if it has a uid.
func (s *Screen) currentIdentity() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil || s.identity.UID == "" {
		return Identity{}, false
	}
	return *s.identity, true
}

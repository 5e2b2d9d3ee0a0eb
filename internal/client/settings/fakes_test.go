package settings

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/adminsettings/internal/logging"
)

var testIdentity = &Identity{UID: "u1", Email: "admin@example.com", FirstName: "Claim", LastName: "Name"}

var fixedNow = time.Date(2025, 3, 4, 5, 6, 7, 890_000_000, time.UTC)

type call struct {
	name string
	arg  any
}

type fakeIdentitySvc struct {
	mu        sync.Mutex
	calls     []call
	reauthErr error
	updateErr error
	block     chan struct{}
}

func (f *fakeIdentitySvc) record(name string, arg any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{name, arg})
}

func (f *fakeIdentitySvc) Reauthenticate(_ context.Context, cred Credential) error {
	f.record("reauthenticate", cred)
	if f.block != nil {
		<-f.block
	}
	return f.reauthErr
}

func (f *fakeIdentitySvc) UpdatePassword(_ context.Context, newPassword string) error {
	f.record("updatePassword", newPassword)
	return f.updateErr
}

func (f *fakeIdentitySvc) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

type mergeCall struct {
	uid   string
	patch ProfilePatch
}

type fakeDocuments struct {
	mu       sync.Mutex
	record   *ProfileRecord
	getErr   error
	mergeErr error
	gets     []string
	merges   []mergeCall
	block    chan struct{}
}

func (f *fakeDocuments) GetProfile(_ context.Context, uid string) (*ProfileRecord, error) {
	f.mu.Lock()
	f.gets = append(f.gets, uid)
	rec, err := f.record, f.getErr
	f.mu.Unlock()
	return rec, err
}

func (f *fakeDocuments) MergeProfile(_ context.Context, uid string, patch ProfilePatch) error {
	f.mu.Lock()
	f.merges = append(f.merges, mergeCall{uid, patch})
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	return f.mergeErr
}

func (f *fakeDocuments) Merges() []mergeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mergeCall(nil), f.merges...)
}

type toast struct {
	kind string
	msg  string
}

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []toast
}

func (n *recordingNotifier) Success(msg string) { n.add("success", msg) }
func (n *recordingNotifier) Error(msg string)   { n.add("error", msg) }

func (n *recordingNotifier) add(kind, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast{kind, msg})
}

func (n *recordingNotifier) Toasts() []toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]toast(nil), n.toasts...)
}

type fixture struct {
	screen   *Screen
	identity *fakeIdentitySvc
	docs     *fakeDocuments
	notifier *recordingNotifier
}

func newFixture(id *Identity) *fixture {
	f := &fixture{
		identity: &fakeIdentitySvc{},
		docs:     &fakeDocuments{},
		notifier: &recordingNotifier{},
	}
	f.screen = NewScreen(id, f.identity, f.docs, f.notifier, logging.Nop{})
	f.screen.now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) fillPasswords(current, next, confirm string) {
	_ = f.screen.SetField(FieldCurrentPassword, current)
	_ = f.screen.SetField(FieldNewPassword, next)
	_ = f.screen.SetField(FieldConfirmPassword, confirm)
}

package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/adminsettings/internal/logging"
	"github.com/dmitrijs2005/adminsettings/internal/server/auth"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/dmitrijs2005/adminsettings/internal/server/services"
)

const testSecret = "secret"

var testIdentity = models.Identity{UserID: "u1", Email: "admin@example.com", FirstName: "Ada", LastName: "Lovelace"}

type fakeIdentity struct {
	session *services.Session
	err     error

	gotUserID   string
	gotEmail    string
	gotPassword string
	gotAuthTime time.Time
}

func (f *fakeIdentity) SignIn(_ context.Context, email, password string) (*services.Session, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.session, f.err
}

func (f *fakeIdentity) RefreshToken(_ context.Context, refreshToken string) (*services.Session, error) {
	return f.session, f.err
}

func (f *fakeIdentity) Reauthenticate(_ context.Context, userID, email, password string) (*services.Session, error) {
	f.gotUserID, f.gotEmail, f.gotPassword = userID, email, password
	return f.session, f.err
}

func (f *fakeIdentity) UpdatePassword(_ context.Context, userID string, authTime time.Time, newPassword string) (*services.Session, error) {
	f.gotUserID, f.gotAuthTime, f.gotPassword = userID, authTime, newPassword
	return f.session, f.err
}

func (f *fakeIdentity) CurrentUser(_ context.Context, userID string) (models.Identity, error) {
	f.gotUserID = userID
	if f.err != nil {
		return models.Identity{}, f.err
	}
	return testIdentity, nil
}

func (f *fakeIdentity) ParseAccessToken(token string) (*auth.Claims, error) {
	return auth.ParseToken(token, []byte(testSecret))
}

type fakeProfiles struct {
	profile *models.Profile
	err     error

	gotCaller string
	gotUser   string
	gotUpdate services.ProfileUpdate
}

func (f *fakeProfiles) Get(_ context.Context, callerID, userID string) (*models.Profile, error) {
	f.gotCaller, f.gotUser = callerID, userID
	return f.profile, f.err
}

func (f *fakeProfiles) Merge(_ context.Context, callerID, userID string, upd services.ProfileUpdate) error {
	f.gotCaller, f.gotUser, f.gotUpdate = callerID, userID, upd
	return f.err
}

func newTestServer(id *fakeIdentity, pr *fakeProfiles) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, id, pr)
}

func mustToken(authTime time.Time, validity time.Duration) string {
	tok, err := auth.GenerateToken(testIdentity, authTime, []byte(testSecret), validity)
	if err != nil {
		panic(err)
	}
	return tok
}

func testSession() *services.Session {
	return &services.Session{AccessToken: "access", RefreshToken: "refresh", Identity: testIdentity}
}

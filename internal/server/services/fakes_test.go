package services

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/dmitrijs2005/adminsettings/internal/cryptox"
	"github.com/dmitrijs2005/adminsettings/internal/dbx"
	"github.com/dmitrijs2005/adminsettings/internal/logging"
	"github.com/dmitrijs2005/adminsettings/internal/server/config"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

var testParams = cryptox.Params{Memory: 64, Time: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

// --- users ---

type fakeUsersRepo struct {
	byID      map[string]*models.User
	getErr    error
	createErr error
	updateErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *u
	cp.Email = strings.ToLower(strings.TrimSpace(cp.Email))
	cp.CreatedAt = time.Now()
	f.byID[cp.ID] = &cp
	return &cp, nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) UpdatePasswordHash(_ context.Context, id string, hash string, at time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = hash
	u.PasswordUpdatedAt = at
	return nil
}

// --- refresh tokens ---

type fakeRefreshRepo struct {
	tokens    map[string]*models.RefreshToken
	findErr   error
	delErr    error
	createErr error
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID string, token string, validity time.Duration, authTime time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{Token: token, UserID: userID, Expires: time.Now().Add(validity), AuthTime: authTime}
	return nil
}

func (f *fakeRefreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteByUser(_ context.Context, userID string) error {
	if f.delErr != nil {
		return f.delErr
	}
	for k, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, k)
		}
	}
	return nil
}

// --- profiles ---

type fakeProfilesRepo struct {
	docs      map[string]*models.Profile
	getErr    error
	createErr error
	mergeErr  error
	merges    []models.ProfilePatch
}

func newFakeProfilesRepo() *fakeProfilesRepo {
	return &fakeProfilesRepo{docs: map[string]*models.Profile{}}
}

func (f *fakeProfilesRepo) Get(_ context.Context, userID string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.docs[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfilesRepo) Create(_ context.Context, p *models.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *p
	f.docs[p.UserID] = &cp
	return nil
}

func (f *fakeProfilesRepo) Merge(_ context.Context, userID string, patch models.ProfilePatch) error {
	f.merges = append(f.merges, patch)
	if f.mergeErr != nil {
		return f.mergeErr
	}
	p, ok := f.docs[userID]
	if !ok {
		return common.ErrorNotFound
	}
	patch.Apply(p)
	return nil
}

// --- manager ---

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	p *fakeProfilesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), r: newFakeRefreshRepo(), p: newFakeProfilesRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository           { return m.p }

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		RecentLoginWindow:            5 * time.Minute,
		MinPasswordLength:            6,
	}
}

func newIdentityService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *IdentityService {
	t.Helper()
	return NewIdentityService(db, rm, cryptox.NewHasher(testParams), testConfig(), logging.Nop{})
}

// seedUser stores a user with the given password and profile names.
func seedUser(t *testing.T, rm *fakeRepoManager, id, email, password string) *models.User {
	t.Helper()
	hash, err := cryptox.NewHasher(testParams).Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &models.User{ID: id, Email: email, PasswordHash: hash}
	rm.u.byID[id] = u
	rm.p.docs[id] = &models.Profile{UserID: id, FirstName: "Ada", LastName: "Lovelace"}
	return u
}


// Package services contains server-side business logic. This file implements
// IdentityService, which signs users in, re-verifies their password for
// sensitive operations and rotates passwords, issuing JWT access tokens plus
// server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/dmitrijs2005/adminsettings/internal/cryptox"
	"github.com/dmitrijs2005/adminsettings/internal/dbx"
	"github.com/dmitrijs2005/adminsettings/internal/logging"
	"github.com/dmitrijs2005/adminsettings/internal/server/auth"
	"github.com/dmitrijs2005/adminsettings/internal/server/config"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Session is what a successful sign-in, refresh, re-authentication or
// password change hands back to the client.
type Session struct {
	AccessToken  string
	RefreshToken string
	Identity     models.Identity
}

// IdentityService provides authentication-related operations:
// - SignIn: verify email and password and mint tokens
// - RefreshToken: rotate refresh tokens, keeping the original auth time
// - Reauthenticate: re-verify the signed-in user's password
// - UpdatePassword: replace the password of a recently authenticated user
type IdentityService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	hasher                       *cryptox.Hasher
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	recentLoginWindow            time.Duration
	minPasswordLength            int
	now                          func() time.Time
}

// NewIdentityService constructs an IdentityService using repositories and server config.
func NewIdentityService(db *sql.DB, m repomanager.RepositoryManager, hasher *cryptox.Hasher, cfg *config.Config, logger logging.Logger) *IdentityService {
	return &IdentityService{
		db:                           db,
		repomanager:                  m,
		hasher:                       hasher,
		logger:                       logger.With("module", "identity"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		recentLoginWindow:            cfg.RecentLoginWindow,
		minPasswordLength:            cfg.MinPasswordLength,
		now:                          time.Now,
	}
}

// SignIn checks email and password. Unknown users and wrong passwords are
// indistinguishable to the caller: both yield ErrInvalidCredential.
func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredential
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return nil, common.ErrInvalidCredential
	}

	s.logger.Info(ctx, "user signed in", "user_id", user.ID)
	return s.newSession(ctx, s.db, user, s.now())
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh Session. Unknown and expired tokens yield
// ErrRefreshTokenExpired. The new tokens keep the original auth time, so a
// long-lived session still has to re-authenticate before sensitive changes.
func (s *IdentityService) RefreshToken(ctx context.Context, refreshToken string) (*Session, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrRefreshTokenExpired
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(s.now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var session *Session
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}

		user, err := s.repomanager.Users(tx).GetByID(ctx, token.UserID)
		if err != nil {
			return fmt.Errorf("error searching user: %w", err)
		}

		session, err = s.newSession(ctx, tx, user, token.AuthTime)
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Reauthenticate re-verifies the password of the signed-in user userID.
// The credential must name that same user (ErrUserMismatch otherwise).
// On success a new Session with a fresh auth time is issued.
func (s *IdentityService) Reauthenticate(ctx context.Context, userID, email, password string) (*Session, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !strings.EqualFold(strings.TrimSpace(email), user.Email) {
		return nil, common.ErrUserMismatch
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		s.logger.Warn(ctx, "re-authentication failed", "user_id", userID)
		return nil, common.ErrWrongPassword
	}

	return s.newSession(ctx, s.db, user, s.now())
}

// UpdatePassword replaces the password of userID. authTime is the auth time
// of the caller's access token; older than the recent-login window yields
// ErrRequiresRecentLogin. All refresh tokens of the user are revoked and a
// new Session is returned for the caller.
func (s *IdentityService) UpdatePassword(ctx context.Context, userID string, authTime time.Time, newPassword string) (*Session, error) {
	now := s.now()
	if now.Sub(authTime) > s.recentLoginWindow {
		return nil, common.ErrRequiresRecentLogin
	}
	if err := s.checkPasswordStrength(newPassword); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var session *Session
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)
		if err := users.UpdatePasswordHash(ctx, userID, hash, now); err != nil {
			return fmt.Errorf("error updating password: %w", err)
		}
		if err := s.repomanager.RefreshTokens(tx).DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("error revoking refresh tokens: %w", err)
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("error searching user: %w", err)
		}

		session, err = s.newSession(ctx, tx, user, authTime)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "password updated", "user_id", userID)
	return session, nil
}

// CurrentUser returns the identity of userID with its profile-name claims.
func (s *IdentityService) CurrentUser(ctx context.Context, userID string) (models.Identity, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return models.Identity{}, err
	}
	return s.identity(ctx, s.db, user), nil
}

// CreateUser registers a user and its profile document.
func (s *IdentityService) CreateUser(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	if err := s.checkPasswordStrength(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.repomanager.Users(tx).Create(ctx, &models.User{ID: uuid.NewString(), Email: email, PasswordHash: hash})
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		created = user

		profile := &models.Profile{UserID: created.ID, FirstName: firstName, LastName: lastName, UpdatedAt: s.now()}
		if err := s.repomanager.Profiles(tx).Create(ctx, profile); err != nil {
			return fmt.Errorf("error creating profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// EnsureUser creates the user unless one with the same email exists.
// It reports whether a user was created.
func (s *IdentityService) EnsureUser(ctx context.Context, email, password, firstName, lastName string) (bool, error) {
	_, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return false, fmt.Errorf("error searching user: %w", err)
	}

	if _, err := s.CreateUser(ctx, email, password, firstName, lastName); err != nil {
		return false, err
	}
	s.logger.Info(ctx, "user seeded", "email", email)
	return true, nil
}

// ParseAccessToken verifies an access token minted by this service.
func (s *IdentityService) ParseAccessToken(token string) (*auth.Claims, error) {
	return auth.ParseToken(token, s.jwtSecret)
}

// --- helpers below ---

func (s *IdentityService) checkPasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < s.minPasswordLength {
		return common.ErrWeakPassword
	}
	return nil
}

// identity joins the account with its profile-name claims. A missing or
// unreadable profile leaves the names empty.
func (s *IdentityService) identity(ctx context.Context, db dbx.DBTX, user *models.User) models.Identity {
	id := models.Identity{UserID: user.ID, Email: user.Email}

	profile, err := s.repomanager.Profiles(db).Get(ctx, user.ID)
	switch {
	case err == nil:
		id.FirstName = profile.FirstName
		id.LastName = profile.LastName
	case !errors.Is(err, common.ErrorNotFound):
		s.logger.Warn(ctx, "profile claims unavailable", "user_id", user.ID, "error", err)
	}
	return id
}

func (s *IdentityService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *IdentityService) newSession(ctx context.Context, db dbx.DBTX, user *models.User, authTime time.Time) (*Session, error) {
	id := s.identity(ctx, db, user)

	access, err := auth.GenerateToken(id, authTime, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(db).Create(ctx, user.ID, refresh, s.refreshTokenValidityDuration, authTime); err != nil {
		return nil, common.ErrorInternal
	}
	return &Session{AccessToken: access, RefreshToken: refresh, Identity: id}, nil
}

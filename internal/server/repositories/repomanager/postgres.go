// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/adminsettings/internal/dbx"
	"github.com/dmitrijs2005/adminsettings/internal/server/migrations"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook. Profiles may live in another store.
type PostgresRepositoryManager struct {
	profileStore profiles.Repository
}

// Option customizes a PostgresRepositoryManager.
type Option func(*PostgresRepositoryManager)

// WithProfileStore makes Profiles return store regardless of the handle it
// is given. Used for the Redis and S3 backends, which are not transactional.
func WithProfileStore(store profiles.Repository) Option {
	return func(m *PostgresRepositoryManager) {
		m.profileStore = store
	}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// RefreshTokens returns a refreshtokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

// Profiles returns the configured profile store, or a PostgreSQL one bound
// to db.
func (m *PostgresRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	if m.profileStore != nil {
		return m.profileStore
	}
	return profiles.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(opts ...Option) RepositoryManager {
	m := &PostgresRepositoryManager{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

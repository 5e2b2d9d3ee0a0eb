package server

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/adminsettings/internal/server/config"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.EndpointAddrHTTP = "127.0.0.1:0"
	return c
}

// stubSeams replaces the database and migration hooks and returns the mock.
func stubSeams(t *testing.T, migrateErr error) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	oldOpen, oldMigrate, oldOut := openDB, runMigrations, logOutput
	openDB = func(string) (*sql.DB, error) { return db, nil }
	runMigrations = func(context.Context, repomanager.RepositoryManager, *sql.DB) error { return migrateErr }
	logOutput = io.Discard
	t.Cleanup(func() {
		openDB, runMigrations, logOutput = oldOpen, oldMigrate, oldOut
	})

	return mock
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestNewProfileStore_Postgres(t *testing.T) {
	store, closer, err := newProfileStore(context.Background(), testConfig())
	require.NoError(t, err)
	assert.Nil(t, store)
	assert.Nil(t, closer)
}

func TestNewProfileStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	c := testConfig()
	c.ProfileStore = config.ProfileStoreRedis
	c.RedisAddr = mr.Addr()

	store, closer, err := newProfileStore(context.Background(), c)
	require.NoError(t, err)
	assert.IsType(t, &profiles.RedisRepository{}, store)
	require.NotNil(t, closer)
	assert.NoError(t, closer.Close())
}

func TestNewProfileStore_RedisUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	c := testConfig()
	c.ProfileStore = config.ProfileStoreRedis
	c.RedisAddr = addr

	_, _, err = newProfileStore(context.Background(), c)
	assert.ErrorContains(t, err, "redis ping error")
}

func TestNewProfileStore_S3(t *testing.T) {
	old := newS3Client
	t.Cleanup(func() { newS3Client = old })

	var got profiles.S3Options
	newS3Client = func(_ context.Context, opts profiles.S3Options) (profiles.ObjectAPI, error) {
		got = opts
		return nil, nil
	}

	c := testConfig()
	c.ProfileStore = config.ProfileStoreS3

	store, closer, err := newProfileStore(context.Background(), c)
	require.NoError(t, err)
	assert.IsType(t, &profiles.S3Repository{}, store)
	assert.Nil(t, closer)
	assert.Equal(t, profiles.S3Options{
		Region:       c.S3Region,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		BaseEndpoint: c.S3BaseEndpoint,
	}, got)

	newS3Client = func(context.Context, profiles.S3Options) (profiles.ObjectAPI, error) {
		return nil, errors.New("boom")
	}
	_, _, err = newProfileStore(context.Background(), c)
	assert.EqualError(t, err, "boom")
}

func TestNewProfileStore_Unknown(t *testing.T) {
	c := testConfig()
	c.ProfileStore = "mongo"

	_, _, err := newProfileStore(context.Background(), c)
	assert.ErrorContains(t, err, `unknown profile store "mongo"`)
}

func TestNewApp_SkipsSeedingWhenAdminExists(t *testing.T) {
	mock := stubSeams(t, nil)

	c := testConfig()
	c.AdminEmail = "admin@example.com"
	c.AdminPassword = "secret-pw"

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM users\s+WHERE email = \$1`).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "password_updated_at", "created_at"}).
			AddRow("u1", "admin@example.com", "hash", now, now))

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	require.NotNil(t, app.identity)
	require.NotNil(t, app.profiles)

	mock.ExpectClose()
	app.close(context.Background())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewApp_MigrationError(t *testing.T) {
	mock := stubSeams(t, errors.New("no database"))
	mock.ExpectClose()

	_, err := NewApp(context.Background(), testConfig())
	assert.ErrorContains(t, err, "migration error: no database")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewApp_OpenError(t *testing.T) {
	old := openDB
	t.Cleanup(func() { openDB = old })
	openDB = func(string) (*sql.DB, error) { return nil, errors.New("bad dsn") }

	_, err := NewApp(context.Background(), testConfig())
	assert.ErrorContains(t, err, "db open error: bad dsn")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	mock := stubSeams(t, nil)

	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)
	mock.ExpectClose()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

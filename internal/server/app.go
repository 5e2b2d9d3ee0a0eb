// Package server initializes and runs the admin settings server.
// It opens the database, selects the profile store backend, seeds the
// admin account and runs the gRPC endpoint and the REST gateway until a
// shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/adminsettings/internal/cryptox"
	"github.com/dmitrijs2005/adminsettings/internal/logging"
	"github.com/dmitrijs2005/adminsettings/internal/server/config"
	"github.com/dmitrijs2005/adminsettings/internal/server/httpapi"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/adminsettings/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adminsettings/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/adminsettings/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	closers  []io.Closer
	identity *services.IdentityService
	profiles *services.ProfileService
}

var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	runMigrations = func(ctx context.Context, m repomanager.RepositoryManager, db *sql.DB) error {
		return m.RunMigrations(ctx, db)
	}
	newS3Client = profiles.NewS3Client
	logOutput   io.Writer = os.Stdout
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newProfileStore returns nil for the postgres backend; the repository
// manager then binds profiles to the SQL handle it is given.
func newProfileStore(ctx context.Context, c *config.Config) (profiles.Repository, io.Closer, error) {
	switch c.ProfileStore {
	case config.ProfileStorePostgres, "":
		return nil, nil, nil

	case config.ProfileStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping error: %w", err)
		}
		return profiles.NewRedisRepository(rdb, c.RedisKeyPrefix), rdb, nil

	case config.ProfileStoreS3:
		api, err := newS3Client(ctx, profiles.S3Options{
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return nil, nil, err
		}
		return profiles.NewS3Repository(api, c.S3Bucket), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown profile store %q", c.ProfileStore)
	}
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level := parseLevel(c.LogLevel)
	logger := logging.NewJSONLogger(logOutput, level)
	if level > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	app := &App{config: c, logger: logger, db: db}

	store, closer, err := newProfileStore(ctx, c)
	if err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("profile store init error: %w", err)
	}
	if closer != nil {
		app.closers = append(app.closers, closer)
	}

	var opts []repomanager.Option
	if store != nil {
		opts = append(opts, repomanager.WithProfileStore(store))
	}
	rm := repomanager.NewPostgresRepositoryManager(opts...)

	if err := runMigrations(ctx, rm, db); err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher := cryptox.NewHasher(cryptox.DefaultParams)
	app.identity = services.NewIdentityService(db, rm, hasher, c, logger.With("module", "identity"))
	app.profiles = services.NewProfileService(rm.Profiles(db), logger.With("module", "profiles"))

	if err := app.seedAdmin(ctx); err != nil {
		app.close(ctx)
		return nil, err
	}

	return app, nil
}

func (app *App) seedAdmin(ctx context.Context) error {
	if app.config.AdminEmail == "" {
		return nil
	}

	created, err := app.identity.EnsureUser(ctx,
		app.config.AdminEmail,
		app.config.AdminPassword,
		app.config.AdminFirstName,
		app.config.AdminLastName,
	)
	if err != nil {
		return fmt.Errorf("admin seed error: %w", err)
	}
	if !created {
		app.logger.Debug(ctx, "admin account already exists", "email", app.config.AdminEmail)
	}
	return nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.identity, app.profiles)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	h := httpapi.NewHandler(app.identity, app.profiles, app.logger.With("module", "httpapi"))
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, h, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) close(ctx context.Context) {
	for _, c := range app.closers {
		if err := c.Close(); err != nil {
			app.logger.Warn(ctx, "close error", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "db close error", "error", err)
		}
	}
}

// Run blocks until ctx is cancelled, a signal arrives or one of the
// servers fails. Both servers are stopped before it returns.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(context.WithoutCancel(ctx))
	app.logger.Info(ctx, "App stopped")
}

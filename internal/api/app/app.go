package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/wanderlist/wanderlist/internal/api/http"
	"github.com/wanderlist/wanderlist/internal/api/service"
	"github.com/wanderlist/wanderlist/internal/api/store"
	"github.com/wanderlist/wanderlist/internal/api/store/drivers/sqlite"
	"github.com/wanderlist/wanderlist/pkg/jwtx"
	"github.com/wanderlist/wanderlist/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the API service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	verifier jwtx.Verifier

	mapService          *service.MapService
	membershipService   *service.MembershipService
	inviteService       *service.InviteService
	profileService      *service.ProfileService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "wanderlist-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	verifier, err := initVerifier(cfg)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.verifier = verifier

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("api service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down api service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("api service stopped")
	return nil
}

// initDatabase opens the sqlite store and applies migrations. The DSN takes
// the write lock at BEGIN (_txlock=immediate) so concurrent redemption
// transactions queue on busy_timeout instead of failing mid-transaction.
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf(
		"file:%s?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_time_format=sqlite",
		app.cfg.DatabaseFile,
	)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initVerifier builds the bearer-token verifier for the configured
// algorithm. The identity provider holds the signing side.
func initVerifier(cfg Config) (jwtx.Verifier, error) {
	switch cfg.AuthAlgorithm {
	case "HS256":
		if cfg.AuthSecret == "" {
			return nil, fmt.Errorf("WANDER_AUTH_SECRET is required for HS256")
		}
		return jwtx.NewHS256Verifier([]byte(cfg.AuthSecret)), nil
	case "EdDSA":
		if cfg.AuthPublicKeyFile == "" {
			return nil, fmt.Errorf("WANDER_AUTH_PUBLIC_KEY_FILE is required for EdDSA")
		}
		pub, err := jwtx.LoadEd25519PublicKey(cfg.AuthPublicKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load auth public key: %w", err)
		}
		return jwtx.NewEd25519Verifier(pub), nil
	default:
		return nil, fmt.Errorf("unsupported auth algorithm %q", cfg.AuthAlgorithm)
	}
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.mapService = &service.MapService{Store: app.db}
	app.membershipService = &service.MembershipService{Store: app.db}
	app.inviteService = &service.InviteService{Store: app.db}
	app.profileService = &service.ProfileService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.MapService = app.mapService
	router.MembershipService = app.membershipService
	router.InviteService = app.inviteService
	router.ProfileService = app.profileService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inkwell-press/inkwell/internal/blog/assets"
	httpapi "github.com/inkwell-press/inkwell/internal/blog/http"
	"github.com/inkwell-press/inkwell/internal/blog/service"
	"github.com/inkwell-press/inkwell/internal/blog/store"
	"github.com/inkwell-press/inkwell/internal/blog/store/drivers/sqlite"
	"github.com/inkwell-press/inkwell/pkg/cryptox"
	"github.com/inkwell-press/inkwell/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the blog service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	assets assets.Store

	// Services
	userService    *service.UserService
	sessionService *service.SessionService
	postService    *service.PostService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "blog-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initAssets(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("blog service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down blog service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("blog service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
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

// initAssets selects and constructs the cover storage driver
func (app *Application) initAssets() error {
	switch app.cfg.AssetDriver {
	case "local", "":
		local, err := assets.NewLocalStore(app.cfg.UploadDir, "/uploads/")
		if err != nil {
			return fmt.Errorf("failed to initialize local asset store: %w", err)
		}
		app.assets = local
		return nil

	case "s3":
		s3store, err := assets.NewS3Store(context.Background(), assets.S3Config{
			Region:       app.cfg.S3Region,
			Bucket:       app.cfg.S3Bucket,
			AccessKey:    app.cfg.S3AccessKey,
			SecretKey:    app.cfg.S3SecretKey,
			BaseEndpoint: app.cfg.S3Endpoint,
			KeyPrefix:    app.cfg.S3KeyPrefix,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize s3 asset store: %w", err)
		}
		app.assets = s3store
		return nil

	default:
		return fmt.Errorf("unknown asset driver %q", app.cfg.AssetDriver)
	}
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	secret := app.cfg.SessionSecret
	if len(secret) == 0 {
		if app.cfg.Env == "prod" {
			return fmt.Errorf("SESSION_SECRET or SESSION_SECRET_FILE must be set in prod")
		}

		// Dev convenience only: sessions do not survive a restart.
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("failed to generate ephemeral session secret: %w", err)
		}
		app.logger.Warn("no session secret configured, generated an ephemeral one")
	}

	sessionService, err := service.NewSessionService(secret, app.cfg.Issuer, app.cfg.SessionTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize session service: %w", err)
	}
	app.sessionService = sessionService

	app.userService = &service.UserService{Store: app.db}
	app.postService = &service.PostService{
		Store:  app.db,
		Assets: app.assets,
	}

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.sessionService.Verifier(),
		BuildVersion,
		app.cfg.Origin,
		app.cfg.Env != "dev",
		app.db,
		app.logger,
	)

	// Wire services to router
	router.UserService = app.userService
	router.SessionService = app.sessionService
	router.PostService = app.postService
	router.MaxUploadBytes = app.cfg.MaxUploadBytes

	// Locally stored covers are served straight off disk
	if local, ok := app.assets.(*assets.LocalStore); ok {
		router.Uploads = http.StripPrefix("/uploads/", http.FileServer(http.Dir(local.Dir())))
	}

	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
	}
}

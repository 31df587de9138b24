package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dukerupert/previewbtn/internal"
	"github.com/dukerupert/previewbtn/internal/handler/admin"
	"github.com/dukerupert/previewbtn/internal/i18n"
	"github.com/dukerupert/previewbtn/internal/middleware"
	"github.com/dukerupert/previewbtn/internal/postgres"
	"github.com/dukerupert/previewbtn/internal/preview"
	"github.com/dukerupert/previewbtn/internal/router"
	"github.com/dukerupert/previewbtn/internal/routes"
	"github.com/dukerupert/previewbtn/internal/telemetry"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 10 * time.Second

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)
	slog.SetDefault(logger)

	// Error tracking
	flushSentry, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer flushSentry()

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	stores := postgres.NewStoreRepository(pool)

	urls, err := preview.NewURLBuilder(cfg.FrontendBaseURL, stores)
	if err != nil {
		return fmt.Errorf("failed to initialize url builder: %w", err)
	}

	translator, err := i18n.NewTranslator(cfg.DefaultLocale)
	if err != nil {
		return fmt.Errorf("failed to initialize translator: %w", err)
	}

	deps := preview.Deps{
		Categories:     postgres.NewCategoryRepository(pool),
		Pages:          postgres.NewPageRepository(pool),
		Products:       postgres.NewProductRepository(pool),
		Rewrites:       postgres.NewRewriteRepository(pool),
		Scopes:         preview.NewScopeResolver(stores),
		URLs:           urls,
		Labels:         translator,
		HomeIdentifier: cfg.CMSHomePage,
	}

	categoryProvider, err := preview.NewCategoryProvider(deps)
	if err != nil {
		return err
	}
	pageProvider, err := preview.NewPageProvider(deps)
	if err != nil {
		return err
	}
	productProvider, err := preview.NewProductProvider(deps)
	if err != nil {
		return err
	}
	productRouteProvider, err := preview.NewProductRouteProvider(deps)
	if err != nil {
		return err
	}

	// ==========================================================================
	// Metrics
	// ==========================================================================

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(cfg.Metrics.Namespace, registry)
	previewMetrics := telemetry.NewPreviewMetrics(cfg.Metrics.Namespace, registry)

	previewHandler := admin.NewPreviewButtonHandler(previewMetrics,
		categoryProvider,
		pageProvider,
		productProvider,
		productRouteProvider,
	)

	// ==========================================================================
	// Router
	// ==========================================================================

	r := router.New(
		router.Recovery(logger),
		telemetry.SentryMiddleware(),
		middleware.RequestID,
		metrics.Middleware,
		router.CORS(cfg.Admin.AllowedOrigins),
		router.Logger(logger),
		middleware.WithRequestLogger(logger),
	)

	routes.RegisterSystemRoutes(r, routes.SystemDeps{
		Ping:           pool.Ping,
		MetricsHandler: metrics.Handler(),
	})
	routes.RegisterAdminRoutes(r, routes.AdminDeps{
		PreviewHandler: previewHandler,
		Locales:        translator,
		APIToken:       cfg.Admin.APIToken,
	})

	if cfg.Admin.APIToken == "" {
		logger.Warn("ADMIN_API_TOKEN not set, admin API is unauthenticated")
	}

	// ==========================================================================
	// Serve
	// ==========================================================================

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting preview button server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("Server stopped")

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

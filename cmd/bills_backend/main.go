package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsevents "github.com/SscSPs/bill_tracker_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bill_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker_app/internal/core/services"
	"github.com/SscSPs/bill_tracker_app/internal/handlers"
	"github.com/SscSPs/bill_tracker_app/internal/messaging/amqp"
	"github.com/SscSPs/bill_tracker_app/internal/middleware"
	"github.com/SscSPs/bill_tracker_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/bill_tracker_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/bill_tracker_app/internal/repositories/memory"
	"github.com/SscSPs/bill_tracker_app/pkg/config"
	"github.com/SscSPs/bill_tracker_app/pkg/database"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, closeRepos, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	publisher, closePublisher := setupEventPublisher(cfg, logger)
	defer closePublisher()

	container := services.NewServiceContainer(cfg, repos, services.WithBillEvents(publisher))

	bills, err := container.Bill.Refresh(middleware.WithLogger(ctx, logger))
	if err != nil {
		logger.Error("Initial bill load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Bills loaded", slog.Int("count", len(bills)))

	go runPeriodicRefresh(ctx, container.Bill, cfg.RefreshInterval, logger)

	r, err := setupRouter(cfg, container, logger)
	if err != nil {
		logger.Error("Failed to set up router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
		cancel()
	}()

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

// setupRepositories picks the bill storage: PostgreSQL when PGSQL_URL is set,
// SQLite when SQLITE_PATH is set and in-memory sample data otherwise.
// The returned func releases the underlying connections.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")

		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				dbPool.Close()
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil

	case cfg.SQLitePath != "":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Using SQLite repositories", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(db), func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing SQLite database", slog.String("error", err.Error()))
			}
		}, nil

	default:
		logger.Info("Using in-memory repositories", slog.Bool("sample_data", cfg.SeedSampleData))
		return memory.NewRepositoryProvider(cfg.SeedSampleData, time.Now()), func() {}, nil
	}
}

// setupEventPublisher connects to the broker when AMQP_URL is set. A broker
// that cannot be reached is logged and the server runs without events.
func setupEventPublisher(cfg *config.Config, logger *slog.Logger) (portsevents.BillEventPublisher, func()) {
	if cfg.AMQPURL == "" {
		return portsevents.NoopPublisher{}, func() {}
	}

	publisher, err := amqp.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		logger.Warn("Failed to connect to AMQP broker, continuing without bill events", slog.String("error", err.Error()))
		return portsevents.NoopPublisher{}, func() {}
	}
	logger.Info("Publishing bill events", slog.String("exchange", cfg.AMQPExchange))
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Error closing AMQP publisher", slog.String("error", err.Error()))
		}
	}
}

func setupRouter(cfg *config.Config, container *portssvc.ServiceContainer, logger *slog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	handlers.RegisterRoutes(r, container)
	return r, nil
}

// runPeriodicRefresh reloads bills every interval until ctx is cancelled.
// Overlapping loads are resolved by the store, which only applies the newest.
func runPeriodicRefresh(ctx context.Context, billService portssvc.BillWriterSvc, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		logger.Info("Periodic bill refresh disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bills, err := billService.Refresh(middleware.WithLogger(ctx, logger))
			if err != nil {
				logger.Error("Periodic bill refresh failed", slog.String("error", err.Error()))
				continue
			}
			logger.Debug("Periodic bill refresh complete", slog.Int("count", len(bills)))
		}
	}
}

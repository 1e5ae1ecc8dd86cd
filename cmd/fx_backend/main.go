package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/fx_rates_app/internal/adapters/ratesource"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_app/internal/core/services"
	"github.com/SscSPs/fx_rates_app/internal/core/synthetic"
	"github.com/SscSPs/fx_rates_app/internal/handlers"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/SscSPs/fx_rates_app/internal/platform/config"
	"github.com/SscSPs/fx_rates_app/internal/platform/migrations"
	"github.com/SscSPs/fx_rates_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/fx_rates_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title FX Rates Backend API
// @version 1.0
// @description Daily foreign-exchange rates with trend, change, volatility and record analytics.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// The synthetic dataset is built once and shared read-only by every request.
	synthCfg := synthetic.DefaultConfig()
	synthCfg.Seed = cfg.SyntheticSeed
	synth := synthetic.NewSource(synthetic.Generate(synthCfg))

	primary := openRateStore(ctx, cfg, logger)
	source := ratesource.NewFallbackSource(primary, synth, cfg.DBQueryTimeout)
	if !source.HasPrimary() {
		logger.Warn("Rate store unavailable, serving synthetic data only")
	}

	container := services.NewServiceContainer(portsrepo.RepositoryProvider{RateRepo: source})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, metrics, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), middleware.MetricsMiddleware(), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openRateStore connects the store-backed reader. It returns nil, and the service runs on
// synthetic data only, when no URL is configured or the URL is unusable. A store that is merely
// down at startup is still returned: the pool connects lazily and every query retries it.
func openRateStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) portsrepo.RateReader {
	if cfg.DatabaseURL == "" {
		return nil
	}

	if cfg.RunMigrations {
		runMigrations(ctx, cfg, logger)
	}

	db, err := database.NewSQLDB(ctx, cfg.DatabaseURL, database.Options{
		MaxConns:       cfg.DBMaxConns,
		IdleTimeout:    cfg.DBIdleTimeout,
		ConnectTimeout: cfg.DBConnectTimeout,
	})
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return nil
	}
	logger.Info("Database connection pool established.", slog.Int("max_conns", cfg.DBMaxConns))

	if cfg.EnableDBCheck {
		if err := database.PingSQLDB(ctx, db, cfg.DBConnectTimeout); err != nil {
			logger.Warn("Rate store unreachable at startup, falling back per query until it recovers",
				slog.String("error", err.Error()))
		}
	}

	repos, err := pgsql.NewRepositoryProvider(db, cfg.RatesTable)
	if err != nil {
		logger.Error("Failed to create rate repository", slog.String("error", err.Error()))
		database.CloseSQLDB(db)
		return nil
	}
	return repos.RateRepo
}

// runMigrations uses its own short-lived connection so the query pool keeps its single slot.
func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) {
	logger.Info("Running database migrations...")
	migrationDB, err := database.NewSQLDB(ctx, cfg.DatabaseURL, database.Options{
		MaxConns:       1,
		ConnectTimeout: cfg.DBConnectTimeout,
		Ping:           true,
	})
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return
	}
	if err := migrations.Up(migrationDB.DB, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
	}
}

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	catalogfile "github.com/fabiograbrielfr-cell/runandsport-pro/internal/adapters/catalog/file"
	dbmemory "github.com/fabiograbrielfr-cell/runandsport-pro/internal/adapters/database/memory"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/adapters/database/pgsql"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/adapters/fx/erapi"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/adapters/geo/ipapi"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/adapters/payment/mercadopago"
	portsrepo "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/repositories"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/services"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/handlers"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/middleware"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/platform/config"
	"github.com/fabiograbrielfr-cell/runandsport-pro/pkg/database"
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

	repos := setupRepositories(cfg, logger)

	providers := services.ProviderSet{
		RateSource: erapi.NewClient(cfg.FxAPIBaseURL, cfg.FxFetchTimeout),
		Geo:        ipapi.NewClient(cfg.GeoAPIURL, cfg.FxFetchTimeout),
		Catalog:    catalogfile.NewLoader(cfg.CatalogPath, cfg.ShopWhatsapp),
	}
	if cfg.MPAccessToken != "" {
		providers.Gateway = mercadopago.NewClient(cfg.MPBaseURL, cfg.MPAccessToken, cfg.FxFetchTimeout)
	} else {
		logger.Warn("No payment processor token configured; checkout preference creation disabled")
	}

	container := services.NewServiceContainer(cfg, providers, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("base_url", cfg.BaseURL()),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories wires the Postgres-backed repositories when a database
// URL is configured, falling back to the in-memory set otherwise.
func setupRepositories(cfg *config.Config, logger *slog.Logger) portsrepo.RepositoryProvider {
	if cfg.DatabaseURL == "" {
		logger.Info("No database configured; carts and preferences are kept in memory")
		return portsrepo.RepositoryProvider{
			CartRepo:       dbmemory.NewCartRepository(),
			PreferenceRepo: dbmemory.NewPreferenceRepository(),
		}
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database connection pool established.")

	runMigrations(cfg, logger)

	return portsrepo.RepositoryProvider{
		CartRepo:       pgsql.NewCartRepository(dbPool),
		PreferenceRepo: pgsql.NewPreferenceRepository(dbPool),
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// standard sql.DB connection, using the pgx stdlib driver to stay
// compatible with the main pool.
func runMigrations(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		os.Exit(1)
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		os.Exit(1)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
}

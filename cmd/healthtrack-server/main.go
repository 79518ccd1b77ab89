package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/healthtrack/healthtrack/internal/config"
	"github.com/healthtrack/healthtrack/internal/domain/appointment"
	"github.com/healthtrack/healthtrack/internal/domain/emergency"
	"github.com/healthtrack/healthtrack/internal/domain/identity"
	"github.com/healthtrack/healthtrack/internal/domain/metric"
	"github.com/healthtrack/healthtrack/internal/domain/profile"
	"github.com/healthtrack/healthtrack/internal/domain/record"
	"github.com/healthtrack/healthtrack/internal/domain/report"
	"github.com/healthtrack/healthtrack/internal/platform/auth"
	"github.com/healthtrack/healthtrack/internal/platform/db"
	"github.com/healthtrack/healthtrack/internal/platform/filestore"
	"github.com/healthtrack/healthtrack/internal/platform/middleware"
	"github.com/healthtrack/healthtrack/internal/platform/web"
)

const version = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthtrack-server",
		Short: "HealthTrack patient API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply the embedded schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.UsePostgres() {
				return fmt.Errorf("DATABASE_URL is not set")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := db.Migrate(ctx, pool)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Printf("Applied %d statement(s) successfully.\n", count)
			return nil
		},
	})

	return cmd
}

// stores bundles the per-entity repositories behind their interfaces so the
// memory and Postgres modes wire identically.
type stores struct {
	appointments appointment.Repository
	metrics      metric.Repository
	records      record.Repository
	profiles     profile.Repository
	bookings     emergency.Repository
	accounts     identity.Repository
}

func memoryStores() stores {
	return stores{
		appointments: appointment.NewMemoryRepo(),
		metrics:      metric.NewMemoryRepo(),
		records:      record.NewMemoryRepo(),
		profiles:     profile.NewMemoryRepo(profile.DemoProfile()),
		bookings:     emergency.NewMemoryRepo(),
		accounts:     identity.NewMemoryRepo(),
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHrs)*time.Hour)

	// Storage: Postgres when DATABASE_URL is set, seeded memory otherwise.
	ctx := context.Background()
	var st stores
	var pool *pgxpool.Pool
	if cfg.UsePostgres() {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		logger.Info().Msg("connected to database")
		st = stores{
			appointments: appointment.NewPGRepo(pool),
			metrics:      metric.NewPGRepo(pool),
			records:      record.NewPGRepo(pool),
			profiles:     profile.NewPGRepo(pool),
			bookings:     emergency.NewPGRepo(pool),
			accounts:     identity.NewPGRepo(pool),
		}
	} else {
		st = memoryStores()
		for name, seed := range map[string]func() error{
			"appointments": func() error { return appointment.Seed(ctx, st.appointments) },
			"metrics":      func() error { return metric.Seed(ctx, st.metrics) },
			"records":      func() error { return record.Seed(ctx, st.records) },
			"accounts":     func() error { return identity.Seed(ctx, st.accounts, tokens) },
		} {
			if err := seed(); err != nil {
				logger.Fatal().Err(err).Str("store", name).Msg("failed to seed demo data")
			}
		}
		logger.Info().Msg("using in-memory storage with demo data")
	}

	files, err := filestore.NewDiskStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = web.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})
	if pool != nil {
		e.GET("/health/db", db.HealthHandler(pool))
	}

	// API index
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": "Health Application API",
			"version": version,
			"endpoints": map[string]string{
				"auth":           "/api/auth",
				"dashboard":      "/api/dashboard",
				"healthMetrics":  "/api/health-metrics",
				"appointments":   "/api/appointments",
				"medicalRecords": "/api/medical-records",
				"profile":        "/api/profile",
				"reports":        "/api/reports",
				"emergency":      "/api/emergency",
			},
		})
	})

	api := e.Group("/api")

	// Domain handlers
	appointment.NewHandler(appointment.NewService(st.appointments)).RegisterRoutes(api)
	metric.NewHandler(metric.NewService(st.metrics)).RegisterRoutes(api)
	record.NewHandler(record.NewService(st.records, files)).RegisterRoutes(api)
	profile.NewHandler(profile.NewService(st.profiles)).RegisterRoutes(api)
	emergency.NewHandler(emergency.NewService(st.bookings), logger).RegisterRoutes(api)
	identity.NewHandler(identity.NewService(st.accounts, tokens), logger).RegisterRoutes(api)
	report.NewHandler(report.NewService(st.appointments, st.metrics, st.records), logger).RegisterRoutes(api)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/therapia/opinions/internal/config"
	"github.com/therapia/opinions/internal/domain/calendar"
	"github.com/therapia/opinions/internal/domain/opinion"
	"github.com/therapia/opinions/internal/domain/referral"
	"github.com/therapia/opinions/internal/domain/roster"
	"github.com/therapia/opinions/internal/domain/scheduling"
	"github.com/therapia/opinions/internal/notify"
	"github.com/therapia/opinions/internal/platform/auth"
	"github.com/therapia/opinions/internal/platform/db"
	"github.com/therapia/opinions/internal/platform/middleware"
	"github.com/therapia/opinions/internal/platform/pdftext"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "opinions-server",
		Short: "Therapy opinion management API server",
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
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
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

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load timezone")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	docs := db.NewDocuments(pool)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.BodyLimit(1<<20, 20<<20))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	if cfg.IsDev() && cfg.AuthSecret == "" {
		logger.Warn().Msg("AUTH_SECRET not set; running with development auth bypass")
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			SigningKey: []byte(cfg.AuthSecret),
		}))
	}

	// Health check
	e.GET("/health", db.HealthHandler(pool))

	apiV1 := e.Group("/api/v1")

	// -- Register Domain Handlers --

	// Calendar domain
	calendarSvc := calendar.NewService(calendar.NewDocClosureRepo(docs))
	calendar.NewHandler(calendarSvc).RegisterRoutes(apiV1)

	// Roster domain
	rosterSvc := roster.NewService(roster.NewDocRepo(docs))
	roster.NewHandler(rosterSvc).RegisterRoutes(apiV1)

	// Opinion domain
	opinionSvc := opinion.NewService(opinion.NewRepoPG(pool))
	opinion.NewHandler(opinionSvc, cfg.ExpiryWindowDays).RegisterRoutes(apiV1)

	// Referral extraction domain
	referralSvc := referral.NewService(pdftext.NewExtractor(), opinionSvc)
	referral.NewHandler(referralSvc).RegisterRoutes(apiV1)

	// Scheduling domain
	schedulingSvc := scheduling.NewService(rosterSvc, calendarSvc)
	scheduling.NewHandler(schedulingSvc).RegisterRoutes(apiV1)

	// Notification engine — daily expiry emails plus the manual summary.
	notifyCtx, notifyCancel := context.WithCancel(ctx)
	defer notifyCancel()

	var sender notify.EmailSender = notify.NewStubEmailSender(logger)
	if cfg.NotificationsEnabled() {
		sender = notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.NotifyFromEmail,
			FromName:  cfg.NotifyFromName,
		}, logger)
	} else {
		logger.Warn().Msg("email delivery disabled; SENDGRID_API_KEY, NOTIFY_FROM_EMAIL and NOTIFY_TO_EMAIL are required")
	}

	tracker := notify.NewDocTracker(docs)
	notifySvc := notify.NewService(opinionSvc, sender, tracker,
		cfg.NotifyToEmail, cfg.NotifyFromName, cfg.ExpiryWindowDays, logger)
	notify.NewHandler(notifySvc).RegisterRoutes(apiV1)

	scheduler := notify.NewScheduler(notifySvc, tracker, cfg.NotifyHour, loc, logger)
	go scheduler.Run(notifyCtx)
	logger.Info().Int("hour", cfg.NotifyHour).Str("timezone", cfg.Timezone).Msg("expiry notifier started")

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	notifyCancel()
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

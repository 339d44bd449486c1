package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/padyhealth/portal/internal/config"
	"github.com/padyhealth/portal/internal/domain/appointment"
	"github.com/padyhealth/portal/internal/domain/billing"
	"github.com/padyhealth/portal/internal/domain/clinical"
	"github.com/padyhealth/portal/internal/domain/dashboard"
	"github.com/padyhealth/portal/internal/domain/doctor"
	"github.com/padyhealth/portal/internal/domain/hospital"
	"github.com/padyhealth/portal/internal/domain/patient"
	"github.com/padyhealth/portal/internal/platform/auth"
	"github.com/padyhealth/portal/internal/platform/db"
	"github.com/padyhealth/portal/internal/platform/live"
	"github.com/padyhealth/portal/internal/platform/middleware"
	"github.com/padyhealth/portal/internal/platform/notification"
	"github.com/padyhealth/portal/internal/platform/refresh"
	"github.com/padyhealth/portal/internal/platform/websocket"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "portal-server",
		Short: "PADY care portal API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the portal API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func newLogger(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Env)

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer client.Disconnect(context.Background())
	logger.Info().Msg("connected to database")

	database := client.Database(cfg.MongoDB)

	// Realtime fan-out
	hub := websocket.NewHub(logger)
	notifier := notification.NewService(hub)

	// Identity
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	revoked := auth.NewRevocationStore()
	defer revoked.Close()
	userStore := auth.NewUserStoreMongo(database)
	authSvc := auth.NewService(userStore, tokens, revoked, notifier, logger)
	authMW := auth.NewMiddleware(tokens, revoked)

	// Domain services
	patientRepo := patient.NewMongoRepository(database)
	patientSvc := patient.NewService(patientRepo, notifier, logger)

	appointmentRepo := appointment.NewMongoRepository(database)
	appointmentSvc := appointment.NewService(appointmentRepo, notifier, logger)

	doctorRepo := doctor.NewMongoRepository(database)
	doctorSvc := doctor.NewService(doctorRepo, notifier, logger)

	hospitalRepo := hospital.NewMongoRepository(database)
	hospitalSvc := hospital.NewService(hospitalRepo, notifier, logger)

	billingRepo := billing.NewMongoRepository(database)
	billingSvc := billing.NewService(billingRepo, notifier, logger)

	clinicalRepo := clinical.NewMongoRepository(database)
	clinicalSvc := clinical.NewService(clinicalRepo, notifier, logger)

	dashboardSvc := dashboard.NewService(patientRepo, appointmentRepo, doctorRepo, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	db.NewHealthHandler(client).RegisterRoutes(e)

	public := e.Group("/api")
	auth.NewHandler(authSvc).RegisterPublicRoutes(public)

	api := e.Group("/api", authMW.Authenticate)
	auth.NewHandler(authSvc).RegisterProtectedRoutes(api)
	patient.NewHandler(patientSvc).RegisterRoutes(api)
	appointment.NewHandler(appointmentSvc).RegisterRoutes(api)
	doctor.NewHandler(doctorSvc).RegisterRoutes(api)
	hospital.NewHandler(hospitalSvc).RegisterRoutes(api)
	billing.NewHandler(billingSvc).RegisterRoutes(api)
	clinical.NewHandler(clinicalSvc).RegisterRoutes(api)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(api)
	notification.NewHandler(notifier).RegisterRoutes(api)
	websocket.NewHandler(hub).RegisterRoutes(api)

	// Live collection subscriptions feeding the hub: each collection
	// change pushes a fresh full snapshot on the matching topic.
	liveCtx, cancelLive := context.WithCancel(context.Background())
	defer cancelLive()
	manager := live.NewManager(live.NewMongoSource(database), logger)
	var cancels []live.CancelFunc
	for _, coll := range db.Collections() {
		if coll == db.CollUsers {
			continue // credentials never leave the server
		}
		topic := coll
		cancel, err := manager.Subscribe(liveCtx, coll, nil, func(docs []live.Document) {
			hub.Publish(topic, docs)
		})
		if err != nil {
			logger.Warn().Err(err).Str("collection", coll).Msg("live subscription unavailable")
			continue
		}
		cancels = append(cancels, cancel)
	}

	// Periodic dashboard push
	refresher := refresh.New(dashboardSvc, hub, cfg.DashboardRefreshInterval, logger)
	if err := refresher.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start dashboard refresh")
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	refresher.Stop()
	for _, cancel := range cancels {
		cancel()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	return nil
}

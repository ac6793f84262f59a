package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"depotlens/internal/config"
	"depotlens/internal/database"
	"depotlens/internal/extraction"
	"depotlens/internal/logger"
	"depotlens/internal/recognition"
	"depotlens/internal/scheduler"
	"depotlens/internal/server"
)

const shutdownTimeout = 15 * time.Second

// @title           Depotlens API
// @version         1.0
// @description     Depotlens tracks a personal securities portfolio. Purchases are entered by hand or read from uploaded broker documents, and valued with live market data.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey PipelineKey
// @in header
// @name X-API-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recognizer, err := recognition.New(ctx, recognition.Options{
		Backend:       appConfig.OCRBackend,
		TesseractPath: appConfig.TesseractPath,
		Languages:     appConfig.OCRLanguages,
		GeminiAPIKey:  appConfig.GeminiAPIKey,
		GeminiModel:   appConfig.GeminiModel,
	})
	if err != nil {
		return fmt.Errorf("failed to create recognizer: %w", err)
	}

	provider := server.NewMarketProvider(appConfig, nil)
	svc := server.NewServices(dbManager.DB(), appConfig, provider, extraction.NewProcessor(recognizer))
	if !svc.Auth.Enabled() {
		log.Warn("OWNER_PASSWORD_HASH is not set, owner routes are unauthenticated")
	}

	if appConfig.PriceRefreshCron != "" {
		sched := scheduler.New(ctx, svc.Market, svc.Audit)
		if err := sched.RegisterPriceRefresh(appConfig.PriceRefreshCron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           server.NewRouter(appConfig, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Depotlens server on port %s (market data: %s)", appConfig.Port, provider.Name())
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

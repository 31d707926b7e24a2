package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hirassa/screening-api/assessment"
	"github.com/hirassa/screening-api/config"
	"github.com/hirassa/screening-api/data"
	"github.com/hirassa/screening-api/handlers"
	"github.com/hirassa/screening-api/health"
	"github.com/hirassa/screening-api/logging"
	"github.com/hirassa/screening-api/pharmacies"
	"github.com/hirassa/screening-api/scheduler"
	"github.com/hirassa/screening-api/server"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Init(cfg.LogLevel, cfg.Env)

	if cfg.APIKey == "" {
		// Recoverable: catalog endpoints still work, pharmacy lookups 500
		logging.Error("DIABETES_SCREENING_API_KEY is not configured, pharmacy lookups will fail")
	}

	// A malformed catalog fails here, not at scoring time
	catalog, err := assessment.Default()
	if err != nil {
		logging.Error("Failed to load assessment catalog", "error", err)
		os.Exit(1)
	}

	client := pharmacies.NewClient(cfg.PharmacyAPIURL, cfg.APIKey, cfg.UpstreamTimeout)

	store := data.NewStatusContainer()
	store.SetServerStartTime(time.Now())

	monitor := scheduler.NewMonitor(store, client)
	if err := monitor.Start(); err != nil {
		logging.Error("Failed to start upstream monitor", "error", err)
		os.Exit(1)
	}
	defer monitor.Stop()

	checker := health.NewChecker(store, catalog)
	handler := handlers.New(catalog, client, checker)
	srv := server.NewServer(cfg, handler)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	logging.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Server close error", "error", err)
	} else {
		logging.Info("Server exited gracefully")
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"alcyxob/clipclass/internal/api"
	"alcyxob/clipclass/internal/app"
	"alcyxob/clipclass/internal/config"
	"alcyxob/clipclass/internal/logger"
	"alcyxob/clipclass/internal/narration"
)

// @title ClipClass API
// @version 1.0
// @description Workout video catalog, keyword workout plans and narration playback.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	appLog, err := logger.New(cfg.Logging.Mode, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer appLog.Sync()
	appLog.Info("Starting ClipClass server", "address", cfg.Server.Address, "snapshot_backend", cfg.Snapshot.Backend)

	// --- Catalog ---
	ctx := context.Background()
	catalog, err := app.Open(ctx, cfg, appLog)
	if err != nil {
		appLog.Fatal("Could not open catalog", "error", err)
	}
	defer func() {
		appLog.Info("Closing snapshot store...")
		if err := catalog.Close(); err != nil {
			appLog.Error("Failed to close snapshot store", "error", err)
		}
	}()

	// --- Narration ---
	synth := narration.NewLogSynthesizer(cfg.Narration.WordsPerMinute, appLog)
	player := narration.NewPlayer(synth, appLog)
	defer player.Cancel()

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(cfg.Server.CORSOrigins, appLog, catalog.Service, player)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10*time.Second + catalog.Planner.Options().Delay,
		IdleTimeout:  120 * time.Second,
	}

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("ListenAndServe error", "error", err)
		}
	}()
	appLog.Info("Server listening", "address", cfg.Server.Address)

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	// The server has 5 seconds to finish the requests it is currently handling
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		appLog.Error("Server forced to shutdown", "error", err)
	}

	appLog.Info("Server exiting.")
}

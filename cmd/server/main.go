package main

import (
	"alcyxob/trainer-console/internal/app"
	"alcyxob/trainer-console/internal/config"
	"alcyxob/trainer-console/internal/logging"
	"context"
	"log"
	"os/signal"
	"syscall"
)

// @title Trainer Console API
// @version 1.0
// @description API for managing workout planners and students.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	sugar := logger.Sugar()

	// Wait for interrupt signal to gracefully shut down the server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console, err := app.New(ctx, &cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize console", "error", err)
	}
	if err := console.Serve(ctx); err != nil {
		sugar.Fatalw("server error", "error", err)
	}
}

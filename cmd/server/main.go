// Package main is the entry point for the SmartInventory API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"smartinventory/internal/domain/auth"
	"smartinventory/internal/domain/inventory"
	"smartinventory/internal/domain/reports"
	v1 "smartinventory/internal/infrastructure/http/v1"
	"smartinventory/internal/seed"
	"smartinventory/pkg/logger"
)

func main() {
	// .env is optional, real deployments set variables directly
	_ = godotenv.Load()

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting smartinventory server")

	// --- Inventory engine ---
	engine := inventory.NewService()

	// --- Reports Service ---
	reportsService := reports.NewService(engine)

	// --- JWT Service ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtConfig := auth.DefaultJWTConfig(jwtSecret)
	jwtService := auth.NewJWTService(jwtConfig)

	// --- Auth Service ---
	authService := auth.NewService(jwtService)

	// --- Demo data ---
	if getEnv("SEED_DEMO_DATA", "true") == "true" {
		if err := seed.LoadUsers(ctx, authService); err != nil {
			log.Fatalw("failed to seed demo users", "error", err)
		}
		if err := seed.LoadInventory(ctx, engine); err != nil {
			log.Fatalw("failed to seed demo inventory", "error", err)
		}
		log.Info("demo dataset loaded")
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:         log,
		Engine:         engine,
		Reports:        reportsService,
		AuthService:    authService,
		TokenValidator: jwtService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

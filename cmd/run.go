package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"roulette/api"
	"roulette/config"
	"roulette/database"
	"roulette/events"
	"roulette/repository"
	"roulette/rng"
	"roulette/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting roulette settlement service...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// Initialize services
	limiter := service.NewRateLimiter(cfg.SpinCooldown)
	spinService := service.NewSpinService(uowFactory, rng.NewSource(), limiter)
	historyService := service.NewHistoryService(uowFactory, cfg.HistoryLimit)

	// Initialize HTTP server
	handler := api.NewHandler(spinService, historyService)
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.NewRouter(handler),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s in %s mode...", cfg.ListenAddr, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		db.Close()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	log.Println("Closing database connection...")
	db.Close()

	log.Println("Shutdown completed")
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL string

	// HTTP configuration
	ListenAddr string

	// Game configuration
	SpinCooldown time.Duration // minimum time between accepted spins per player
	HistoryLimit int           // default page size for the history endpoint

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ListenAddr:  ":8080",

		// Game settings with defaults
		SpinCooldown: 2000 * time.Millisecond,
		HistoryLimit: 20,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		config.ListenAddr = addr
	}
	if cooldown := os.Getenv("SPIN_COOLDOWN_MS"); cooldown != "" {
		if parsed, err := strconv.Atoi(cooldown); err == nil && parsed > 0 {
			config.SpinCooldown = time.Duration(parsed) * time.Millisecond
		}
	}
	if limit := os.Getenv("HISTORY_LIMIT"); limit != "" {
		if parsed, err := strconv.Atoi(limit); err == nil && parsed > 0 {
			config.HistoryLimit = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}

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
	"go.uber.org/zap"

	"github.com/biblestudio/bible-studio-api/internal/ai"
	"github.com/biblestudio/bible-studio-api/internal/api/rest"
	"github.com/biblestudio/bible-studio-api/internal/config"
	"github.com/biblestudio/bible-studio-api/internal/database"
	"github.com/biblestudio/bible-studio-api/internal/logger"
	"github.com/biblestudio/bible-studio-api/internal/settings"
)

// aiSettings prefers the saved settings blob over the config file, so
// a provider chosen in the client survives restarts.
func aiSettings(cfg *config.Config, store *settings.Store) ai.Settings {
	loaded, found, err := store.Load()
	if err != nil {
		logger.Warn("Failed to load settings, using config defaults", zap.Error(err))
	}
	if found && loaded.AI.Kind != "" {
		return loaded.AI
	}
	return ai.Settings{
		Kind:        ai.ProviderKind(cfg.AI.Provider),
		Model:       cfg.AI.Model,
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
	}
}

func main() {
	// .env is optional and only covers local development
	_ = godotenv.Load()

	// Initialize logger
	debug := os.Getenv("GIN_MODE") != "release"
	logger.Init(debug)
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		logger.Warn("Failed to load config file, using defaults", zap.Error(err))
		cfg, _ = config.Load("")
	}

	logger.Info("Starting Bible Studio API server",
		zap.String("database", cfg.Database.Path),
		zap.Int("port", cfg.Server.Port),
		zap.String("ai_provider", cfg.AI.Provider),
	)

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Create repository with read caches
	repo := database.NewCachedRepository(database.NewRepository(db))

	// Settings blob and AI provider
	store := settings.NewStore(cfg.Settings.Path)
	provider, err := ai.NewProvider(aiSettings(cfg, store))
	if err != nil {
		logger.Fatal("Failed to configure AI provider", zap.Error(err))
	}
	svc := ai.NewService(provider, repo)
	logger.Info("AI provider configured", zap.String("provider", provider.Name()))

	// Setup Gin router
	router := rest.SetupRouter(cfg, db, repo, svc, store)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server started",
			zap.Int("port", cfg.Server.Port),
			zap.String("rest_api", fmt.Sprintf("http://localhost:%d/api/v1", cfg.Server.Port)),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isdelr/identity-be/internal/api"
	"github.com/isdelr/identity-be/internal/auth"
	"github.com/isdelr/identity-be/internal/config"
	"github.com/isdelr/identity-be/internal/logger"
	"github.com/isdelr/identity-be/internal/services"
	"github.com/isdelr/identity-be/internal/store"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel)

	// Set up the user store and the auth components
	userStore := store.NewMemoryStore()
	hasher := auth.NewHasher()
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Set up services
	authService := services.NewAuthService(userStore, hasher, tokens)

	// Set up router
	router := api.NewRouter(authService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}

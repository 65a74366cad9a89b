package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/api"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/auth"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/config"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/repositories"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	client := repositories.NewClient(cfg.AWS)

	// Fail fast when the store is unreachable.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repositories.Ping(ctx, client); err != nil {
		logger.Fatal().Err(err).Msg("DynamoDB connection failed")
	}
	logger.Info().Msg("DynamoDB connection established")

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn)
	users := repositories.NewUserRepository(client, cfg.Tables.Users)
	events := repositories.NewEventRepository(client, cfg.Tables.Events)
	files := repositories.NewFileRepository(client, cfg.Tables.Files)

	handler := api.NewRouter(cfg, logger, tokens, users, events, files)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: handler,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info().Str("port", cfg.Port).Msg("starting admin server")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Str("port", cfg.Port).Msg("server stopped")
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bloglist/internal/config"
	"bloglist/internal/http/server"
	"bloglist/internal/logger"
	"bloglist/internal/services/auth"
	"bloglist/internal/services/blogs"
	"bloglist/internal/services/users"
	"bloglist/internal/storage"
	"bloglist/internal/storage/inmemory"
	"bloglist/internal/storage/postgres"
)

func main() {
	log := logger.NewLogger()
	cfg := config.NewConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store storage.Repository
	if cfg.DatabaseDSN != "" {
		pg, err := postgres.NewPostgresStorage(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		store = pg
		log.Info().Msg("using postgres storage")
	} else {
		store = inmemory.NewStorage()
		log.Info().Msg("using in-memory storage")
	}
	defer store.Close()

	tokenService, err := auth.NewTokenService(cfg.JWTSecretKey, cfg.JWTAccessExpire)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create token service")
	}

	userService := users.NewService(store)
	blogService := blogs.NewService(store, tokenService)

	srv, err := server.NewServer(log, *cfg, userService, tokenService, blogService, store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	if err := srv.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prestige-worldwide/claims-intake/internal/api"
	"github.com/prestige-worldwide/claims-intake/internal/infrastructure/config"
	mongodb "github.com/prestige-worldwide/claims-intake/internal/infrastructure/db/mongo"
	redisdb "github.com/prestige-worldwide/claims-intake/internal/infrastructure/db/redis"
	"github.com/prestige-worldwide/claims-intake/internal/infrastructure/geo"
	"github.com/prestige-worldwide/claims-intake/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Service: "claims-intake",
		Pretty:  cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Warn().Err(err).Msg("disconnect mongo")
		}
	}()

	if err := mongodb.NewClaimRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("ensure claim indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("close redis")
		}
	}()

	maps := geo.NewClient(geo.Config{
		MapsKey:   cfg.Google.MapsKey,
		PlacesKey: cfg.Google.PlacesKey,
	})

	e := api.NewRouter(db, rdb, maps, cfg.JWTSecret, log)

	go func() {
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", cfg.Address()).Str("env", cfg.Env).Msg("claims intake API listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}

	log.Info().Msg("server exited cleanly")
}

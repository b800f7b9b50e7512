package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cityhousing/housing-units-api/internal/api"
	"github.com/cityhousing/housing-units-api/internal/core/service"
	"github.com/cityhousing/housing-units-api/internal/infrastructure/config"
	mongodb "github.com/cityhousing/housing-units-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cityhousing/housing-units-api/internal/infrastructure/db/redis"
	"github.com/cityhousing/housing-units-api/internal/infrastructure/queue"
	"github.com/cityhousing/housing-units-api/internal/infrastructure/socrata"
	"github.com/cityhousing/housing-units-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	unitRepo := mongodb.NewHousingUnitRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	if err := unitRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("housing unit indexes failed")
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}

	runner := queue.NewRunner(cfg.Workers, redisdb.NewTaskStatusStore(rdb), log)
	runner.Start(ctx)

	datasetClient := socrata.NewClient(socrata.Config{
		BaseURL:  cfg.Socrata.BaseURL,
		AppToken: cfg.Socrata.AppToken,
		PageSize: cfg.Socrata.PageSize,
	}, log)

	unitService := service.NewHousingUnitService(unitRepo, log)
	ingestionService := service.NewIngestionService(unitRepo, datasetClient, runner, log)
	taskService := service.NewTaskStatusService(runner)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	userService := service.NewUserService(userRepo)

	e := api.NewRouter(api.RouterDeps{
		HousingUnits:     unitService,
		Ingestion:        ingestionService,
		Tasks:            taskService,
		Auth:             authService,
		Users:            userService,
		DefaultDatasetID: cfg.Socrata.DatasetID,
		JWTSecret:        cfg.JWTSecret,
		Mongo:            db,
		Redis:            rdb,
		Logger:           log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("housing units api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

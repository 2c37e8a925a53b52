package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/culinate/recipe-engine/config"
	"github.com/culinate/recipe-engine/internal/database"
	"github.com/culinate/recipe-engine/internal/server"
	"github.com/culinate/recipe-engine/internal/service"
	"github.com/culinate/recipe-engine/internal/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	var sessions service.SessionStore
	if cfg.SessionBackend == "redis" {
		client, err := database.NewRedisClient(cfg, logger)
		if err != nil {
			logger.Fatal("failed to connect to Redis", zap.Error(err))
		}
		sessions = service.NewRedisSessionStore(client, cfg.MaxSessionMemory)
	} else {
		sessions = service.NewMemorySessionStore(cfg.MaxSessionMemory)
	}

	recipes := store.NewGormStore(db, logger, cfg.RetrievalTimeout)
	search := service.NewSearchService(recipes, sessions, logger,
		service.WithDefaultLimit(cfg.DefaultSearchLimit),
		service.WithLimitCeiling(cfg.SearchLimitCeiling),
	)

	srv := server.New(search, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfg.ServerHost + ":" + cfg.ServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

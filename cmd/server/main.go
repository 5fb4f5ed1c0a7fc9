package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yourname/wellnesstracker/internal"
	"github.com/yourname/wellnesstracker/internal/api"
	"github.com/yourname/wellnesstracker/internal/auth"
	"github.com/yourname/wellnesstracker/internal/config"
	"github.com/yourname/wellnesstracker/internal/store"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	var users store.UserRepository
	var logs store.WellnessLogRepository
	switch cfg.StorageBackend {
	case "postgres":
		users, logs, err = store.NewPostgresRepositories(cfg.PostgresDSN, logger)
		if err != nil {
			logger.Fatalf("failed to init postgres storage: %v", err)
		}
	default:
		users, logs = store.NewMemoryRepositories(logger)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret"
		logger.Warnf("JWT_SECRET not set, using development default")
	}

	var provider auth.Provider
	if cfg.AuthServiceURL != "" {
		provider = auth.NewRemoteProvider(cfg.AuthServiceURL, logger)
	} else {
		provider = auth.NewLocalProvider(cfg.JWTSecret, logger)
	}

	app := api.NewApp(logger, users, logs, cfg)
	r := api.NewRouter(app, provider)

	logger.Infof("server running on %s (storage=%s)", cfg.Addr, cfg.StorageBackend)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}

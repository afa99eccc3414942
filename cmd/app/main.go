package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"configecho/internal/app/config"
	httpapi "configecho/internal/app/http"
	"configecho/internal/app/http/handler"
	"configecho/internal/domain/settings"
	"configecho/internal/infrastructure/db/pg"
	"configecho/internal/infrastructure/logging"
)

func main() {
	ctx := context.Background()

	applied, envErr := config.LoadEnvFile(config.EnvFilePath)

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log, err := logging.NewLogger(cfg.Server.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	switch {
	case envErr != nil && applied == 0:
		log.Warn("env file not loaded", zap.String("path", config.EnvFilePath), zap.Error(envErr))
	case envErr != nil:
		log.Warn("env file partially loaded", zap.String("path", config.EnvFilePath), zap.Int("keys", applied), zap.Error(envErr))
	default:
		log.Info("env file loaded", zap.String("path", config.EnvFilePath), zap.Int("keys", applied))
	}

	logSettings(log, cfg.Settings)

	addr, fallback := cfg.ListenAddr()
	if fallback {
		log.Warn("PORT missing or invalid, using default", zap.String("addr", addr))
	}

	h := handler.New(settings.NewService(cfg.Settings), log)
	router := httpapi.NewRouter(h, log)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Info("server starting", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

func logSettings(log *zap.Logger, s settings.Settings) {
	if dbURL, ok := s.DatabaseURL.Get(); !ok {
		log.Info("database url", zap.Bool("db_set", false))
	} else if info, err := pg.ParseDSN(dbURL); err != nil {
		log.Info("database url", zap.Bool("db_set", true), zap.NamedError("parse_error", err))
	} else {
		log.Info("database url", append([]zap.Field{zap.Bool("db_set", true)}, info.Fields()...)...)
	}

	port, ok := s.Port.Get()
	log.Info("port", zap.Bool("port_set", ok), zap.String("port", port))
}

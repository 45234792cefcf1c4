package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/api"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/config"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/logger"
)

const (
	defaultConfigPath = "./cmd/app/config.yml"
	shutdownTimeout   = 5 * time.Second
)

func Start() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chatDAO, closeStore, err := openChatStore(ctx, conf.Store)
	if err != nil {
		return fmt.Errorf("failed to initialize chat store -> %w", err)
	}
	defer closeStore()

	chatCache, closeCache, err := openChatCache(ctx, conf)
	if err != nil {
		return fmt.Errorf("failed to initialize chat cache -> %w", err)
	}
	defer closeCache()

	watchConfig(configPath)

	s := api.NewServer(conf, chatDAO, chatCache)

	srv := &http.Server{
		Addr:              ":" + s.Config.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
	case <-ctx.Done():
		zap.L().Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

// watchConfig applies log level changes from the config file without a restart.
func watchConfig(path string) {
	err := config.Watch(path,
		func(conf *config.AppConfig) {
			if err := logger.SetLevel(conf.API.LogLevel); err != nil {
				zap.L().Warn("ignoring log level from config", zap.Error(err))
				return
			}
			zap.L().Info("config reloaded", zap.String("log_level", logger.Level().String()))
		},
		func(err error) {
			zap.L().Warn("ignoring invalid config change", zap.Error(err))
		},
	)
	if err != nil {
		zap.L().Info("config file not watched", zap.String("path", path), zap.Error(err))
	}
}

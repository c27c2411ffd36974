package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/madeindra/chongqing-story/internal/config"
	"github.com/madeindra/chongqing-story/internal/deepseek"
	"github.com/madeindra/chongqing-story/internal/handler"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	ai := deepseek.NewDeepSeek(cfg.APIKey, deepseek.WithBaseURL(cfg.BaseURL))
	h := handler.NewHandler(ai, logger)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: handler.NewRouter(h, handler.RouterConfig{
			StaticDir:      cfg.StaticDir,
			AllowedOrigins: cfg.AllowedOrigins,
			Logger:         logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("port", cfg.Port).Msgf("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

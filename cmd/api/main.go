package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "github.com/comitanigiacomo/lifeboard/docs"
	"github.com/comitanigiacomo/lifeboard/internal/config"
	"github.com/comitanigiacomo/lifeboard/internal/logging"
)

const version = "1.0.0"

// @title Lifeboard API
// @version 1.0
// @description Personal life dashboard: days, habits, goals and the wheel of life.
// @BasePath /api/v1
func main() {
	startTime := time.Now()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Critical: invalid configuration")
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	app, err := newApp(ctx, cfg, startTime)
	if err != nil {
		logging.Fatal().Err(err).Msg("Critical: startup failed")
	}
	defer app.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logging.Info().Str("port", cfg.Server.Port).Str("driver", cfg.Database.Driver).Msg("Lifeboard running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Critical server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("Stop signal received. Shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Fatal().Err(err).Msg("Forced shutdown error")
	}

	logging.Info().Msg("Server stopped gracefully.")
}

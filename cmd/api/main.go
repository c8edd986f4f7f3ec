package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"artbot/internal/horde"
	"artbot/internal/http/handlers"
	httpapi "artbot/internal/http/httpapi"
	"artbot/internal/infra"
	"artbot/internal/telemetry"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	var sink telemetry.Sink = telemetry.NopSink{}
	if cfg.TelemetryURL != "" {
		sink = telemetry.NewHTTPSink(cfg.TelemetryURL, logger)
	}

	client := horde.New(horde.Options{
		BaseURL:     cfg.HordeBaseURL,
		APIKey:      cfg.HordeAPIKey,
		ClientAgent: cfg.ClientAgent,
		Telemetry:   sink,
		Logger:      logger,
	})

	app := handlers.NewApp(logger, client, sink)
	router := httpapi.NewRouter(app, httpapi.Options{
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

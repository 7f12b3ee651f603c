package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kefmc/tournament-engine/internal/api"
	"github.com/kefmc/tournament-engine/internal/config"
	"github.com/kefmc/tournament-engine/internal/factory"
	"github.com/kefmc/tournament-engine/internal/telemetry"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	if err := run(*configPath); err != nil {
		slog.Error("fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.Any("error", err))
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	tp := telemetry.NewNopProvider()
	if cfg.Telemetry.Enabled {
		if cfg.Telemetry.ServiceVersion == "" {
			cfg.Telemetry.ServiceVersion = version
		}
		tp, err = telemetry.Setup(ctx, cfg.Telemetry)
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without OTEL export", slog.Any("error", err))
			tp = telemetry.NewNopProvider()
		}
	}
	defer func() {
		if shutdownErr := tp.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()
	if tp.Logger != nil {
		logger = tp.Logger
	}

	app, err := factory.New(factory.Config{
		Storage:         cfg.Storage,
		Logger:          logger,
		Telemetry:       tp,
		EngineCacheSize: cfg.Server.EngineCacheSize,
	})
	if err != nil {
		return fmt.Errorf("creating application (storage=%s): %w", cfg.Storage.Type, err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("closing storage", slog.Any("error", closeErr))
		}
	}()

	if cfg.Admin.KeyHash == "" {
		logger.Warn("no admin key hash configured, admin routes are disabled")
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		Engines:      app,
		AdminKeyHash: cfg.Admin.KeyHash,
	})
	server := api.NewServer(router, api.ServerConfigFrom(cfg.Server), logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.InfoContext(ctx, "server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.Storage.Type),
		slog.String("version", version),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	logger.Info("server stopped")
	return nil
}

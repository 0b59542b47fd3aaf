package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"CapIot.esp32mock/internal/config"
	"CapIot.esp32mock/internal/logging"
	"CapIot.esp32mock/internal/sensor"
	"CapIot.esp32mock/internal/server"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	// Used until the configured logger exists.
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(os.Args[1:], bootLogger)
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("Error loading configuration")
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("Error creating logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := server.NewHandler(cfg, sensor.NewGenerator(), logger)
	srv := server.New(cfg, handler, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped with error")
	}
}

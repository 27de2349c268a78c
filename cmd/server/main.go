package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"nba-recap-service/internal/config"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/server"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nba-recap-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server construction failed", err)
		stop()
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wallet-keeper/internal/adapter"
	"github.com/MKhiriev/go-wallet-keeper/internal/client"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

func main() {
	log := logger.NewWithWriter("walletctl", os.Stderr)
	level := os.Getenv("WALLETCTL_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	if err := logger.SetLevel(level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, err := client.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.ServerAddress, cfg.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, client.NewFileTokenStore(cfg.TokenFile), os.Stdout, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "walletctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}

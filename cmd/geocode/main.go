package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grantshandy/nominatim-go/internal/app"
	"github.com/grantshandy/nominatim-go/internal/config"
	"github.com/grantshandy/nominatim-go/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "geocode failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: geocode <status|search|reverse|lookup> [args...]")
	}
	op, args := os.Args[1], os.Args[2:]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	geocoder, err := app.NewGeocoder(cfg, log)
	if err != nil {
		log.ErrorObj("failed to initialize geocoder", "error", err.Error())
		return err
	}

	if err := geocoder.Run(ctx, op, args); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

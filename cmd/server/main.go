package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/robj/ethsend/api"
	"github.com/robj/ethsend/infra/initializer"
	"github.com/robj/ethsend/pkg/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps.Session.Initialize(ctx)
	deps.Session.StartGasFeePolling(ctx)
	defer deps.Session.StopGasFeePolling()

	app := fiber.New()
	app.Use(recover.New())
	api.PriceRoutes(app, deps.Switcher)
	api.SendRoutes(app, deps.Session)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTP.Addr)
		errCh <- app.Listen(cfg.HTTP.Addr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		return app.Shutdown()
	case err := <-errCh:
		return err
	}
}

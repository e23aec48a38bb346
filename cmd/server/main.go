package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobmatch/internal/app"
	"jobmatch/internal/config"

	"golang.org/x/sync/errgroup"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	if err := config.LoadDotEnv(); err != nil {
		logger.Fatalf("failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Fatalf("invalid HTTP port: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootCtx, cancelBoot := context.WithTimeout(ctx, 15*time.Second)
	bootstrap, cleanup, err := app.Bootstrap(bootCtx, cfg, logger)
	cancelBoot()
	if err != nil {
		logger.Fatalf("failed to bootstrap app: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Printf("cleanup error: %v", err)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		bootstrap.Container.Hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		logger.Printf("[HTTP] %s listening on %s env=%s", cfg.App.AppName, addr, cfg.App.Environment)
		return bootstrap.Fiber.Listen(addr)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return bootstrap.Fiber.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("server error: %v", err)
	}
}

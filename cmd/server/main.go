package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/readmeforge/internal/config"
	"github.com/readmeforge/internal/handler"
	"github.com/readmeforge/internal/logger"
	"github.com/readmeforge/internal/router"
	"github.com/readmeforge/internal/service"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "readmeforge: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg := config.Load()

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.HumanReadableLogs(),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	quotes := service.NewQuoteService(service.SettingsFromConfig(cfg), log.WithFields(map[string]any{"component": "quote"}))
	r, err := router.SetupRouter(handler.NewAPI(quotes, log), cfg.SessionSecret, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(map[string]any{"addr": cfg.ListenAddr, "ai_provider": cfg.AIProvider}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

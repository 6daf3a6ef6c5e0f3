package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-pos/internal/cli"
	"restaurant-pos/internal/config"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/services/menu"
	"restaurant-pos/internal/web"
)

func main() {
	var (
		mode = flag.String("mode", "cli", "Driver mode (cli, web)")
		port = flag.Int("port", 0, "HTTP port for web mode (overrides POS_PORT)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	log := logger.New(*mode, cfg.SlogLevel())
	sessionID := logger.GenerateSessionID()

	catalog := menu.DefaultCatalog()

	switch *mode {
	case "cli":
		if err := runCLI(cfg, log, catalog); err != nil {
			log.Error("service_failed", sessionID, "Prompt loop failed", err)
			os.Exit(1)
		}
	case "web":
		if err := runWeb(cfg, log, catalog); err != nil {
			log.Error("service_failed", sessionID, "Web UI failed", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

// runCLI drives one interactive customer session over stdin/stdout.
func runCLI(cfg *config.Config, log *logger.Logger, catalog *menu.Catalog) error {
	loop := cli.New(cfg, log, catalog, os.Stdin, os.Stdout)
	return loop.Run()
}

// runWeb serves the single-page form UI until interrupted.
func runWeb(cfg *config.Config, log *logger.Logger, catalog *menu.Catalog) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := web.NewHandler(cfg, log, catalog)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		sessionID := logger.GenerateSessionID()
		log.Info("service_started", sessionID, fmt.Sprintf("Web UI started on port %d", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

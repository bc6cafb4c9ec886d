// Package main is the entry point for unraid-exporter, a Prometheus exporter
// for Unraid servers.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	unraid "github.com/jamesprial/unraid-api"
	"github.com/jamesprial/unraid-api/config"
	"github.com/jamesprial/unraid-api/internal/exporter"
)

func main() {
	if err := config.LoadDotenv(""); err != nil {
		log.Printf("warning: %v", err)
	}

	cfg := config.DefaultConfig()
	if path := os.Getenv("UNRAID_CONFIG_PATH"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			log.Fatalf("could not load config from %q: %v", path, err)
		}
		cfg = loaded
	}
	config.ApplyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	client, err := unraid.NewClient(unraid.Config{
		Host:        cfg.Connection.Host,
		APIKey:      cfg.Connection.APIKey,
		HTTPPort:    cfg.Connection.HTTPPort,
		HTTPSPort:   cfg.Connection.HTTPSPort,
		InsecureTLS: cfg.Connection.InsecureTLS,
		Timeout:     cfg.Connection.Timeout,
		Logger:      logger,
	})
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}
	defer client.Close()

	metrics := exporter.NewMetrics()
	poller := exporter.NewPoller(client, metrics,
		time.Duration(cfg.Exporter.PollInterval)*time.Second, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	addr := fmt.Sprintf(":%d", cfg.Exporter.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("unraid-exporter listening on %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-stop
	log.Println("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

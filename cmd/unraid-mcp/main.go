// Package main is the entry point for the unraid-mcp server, which exposes
// an Unraid server's GraphQL API as MCP tools over streamable HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"

	unraid "github.com/jamesprial/unraid-api"
	"github.com/jamesprial/unraid-api/config"
	"github.com/jamesprial/unraid-api/internal/auth"
	"github.com/jamesprial/unraid-api/internal/mcptools"
	"github.com/jamesprial/unraid-api/internal/tools"
)

const defaultConfigPath = "/config/config.yaml"

func main() {
	if err := config.LoadDotenv(""); err != nil {
		log.Printf("warning: %v", err)
	}

	cfg := loadConfig()
	config.ApplyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	tokenBefore := cfg.Server.AuthToken
	token, err := config.EnsureAuthToken(cfg)
	if err != nil {
		log.Printf("warning: could not generate auth token: %v — running without authentication", err)
	} else if tokenBefore == "" {
		log.Printf("generated auth token (set UNRAID_MCP_AUTH_TOKEN to persist): %s", token)
	}

	client, err := unraid.NewClient(unraid.Config{
		Host:        cfg.Connection.Host,
		APIKey:      cfg.Connection.APIKey,
		HTTPPort:    cfg.Connection.HTTPPort,
		HTTPSPort:   cfg.Connection.HTTPSPort,
		InsecureTLS: cfg.Connection.InsecureTLS,
		Timeout:     cfg.Connection.Timeout,
	})
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}
	defer client.Close()

	mcpServer := server.NewMCPServer(
		"unraid-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	var registrations []tools.Registration
	registrations = append(registrations, mcptools.SystemTools(client)...)
	registrations = append(registrations, mcptools.DockerTools(client)...)
	registrations = append(registrations, mcptools.VMTools(client)...)
	registrations = append(registrations, mcptools.StorageTools(client)...)
	registrations = append(registrations, mcptools.NotificationTools(client)...)
	registrations = append(registrations, mcptools.GraphQLTools(client)...)

	tools.RegisterAll(mcpServer, registrations)

	// Build Streamable HTTP server and wrap with auth middleware.
	httpHandler := server.NewStreamableHTTPServer(mcpServer)
	authMiddleware := auth.NewAuthMiddleware(cfg.Server.AuthToken)
	wrappedHandler := authMiddleware(httpHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           wrappedHandler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("unraid-mcp listening on %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-stop
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
	log.Println("server stopped")
}

// loadConfig attempts to read the config file from the path specified by
// UNRAID_CONFIG_PATH or the default /config/config.yaml. If the file cannot
// be read, DefaultConfig is returned.
func loadConfig() *config.Config {
	path := os.Getenv("UNRAID_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("could not load config from %q (%v), using defaults", path, err)
		return config.DefaultConfig()
	}

	log.Printf("loaded config from %q", path)
	return cfg
}

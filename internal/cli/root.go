// Package cli implements the unraidctl command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	unraid "github.com/jamesprial/unraid-api"
	"github.com/jamesprial/unraid-api/config"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	flagHost     string
	flagAPIKey   string
	flagInsecure bool
	flagTimeout  int
	flagVerbose  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "unraidctl",
	Short: "Control an Unraid server from the command line",
	Long: `unraidctl talks to an Unraid server's GraphQL API.

Connection settings come from flags, the environment (UNRAID_HOST,
UNRAID_API_KEY), or a .env file in the working directory.

Get started:
  unraidctl info            Show server identity and versions
  unraidctl metrics         Show CPU and memory utilization
  unraidctl array           Show array state and disks
  unraidctl containers      List Docker containers
  unraidctl vms             List virtual machines`,
	Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "Unraid server host (default: UNRAID_HOST)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key (default: UNRAID_API_KEY)")
	rootCmd.PersistentFlags().BoolVar(&flagInsecure, "insecure", false, "Skip TLS certificate verification")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "Request timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// SetVersion sets the version info
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// newClient builds a client from flags, environment, and .env file.
func newClient() (*unraid.Client, error) {
	_ = config.LoadDotenv("")

	cfg := config.DefaultConfig()
	config.ApplyEnvOverrides(cfg)

	if flagHost != "" {
		cfg.Connection.Host = flagHost
	}
	if flagAPIKey != "" {
		cfg.Connection.APIKey = flagAPIKey
	}
	if flagInsecure {
		cfg.Connection.InsecureTLS = true
	}
	if flagTimeout > 0 {
		cfg.Connection.Timeout = flagTimeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if flagVerbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return unraid.NewClient(unraid.Config{
		Host:        cfg.Connection.Host,
		APIKey:      cfg.Connection.APIKey,
		HTTPPort:    cfg.Connection.HTTPPort,
		HTTPSPort:   cfg.Connection.HTTPSPort,
		InsecureTLS: cfg.Connection.InsecureTLS,
		Timeout:     cfg.Connection.Timeout,
		Logger:      logger,
	})
}

// commandTimeout bounds a single CLI invocation.
func commandTimeout() time.Duration {
	if flagTimeout > 0 {
		return time.Duration(flagTimeout) * time.Second
	}
	return 60 * time.Second
}

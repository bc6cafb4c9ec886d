// Package config provides configuration loading and defaults for the
// unraid-api frontends.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds network and authentication settings for the MCP server.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	AuthToken string `yaml:"auth_token"`
}

// ConnectionConfig holds connection details for the Unraid GraphQL API.
type ConnectionConfig struct {
	Host           string `yaml:"host"`
	APIKey         string `yaml:"api_key"`
	HTTPPort       int    `yaml:"http_port"`
	HTTPSPort      int    `yaml:"https_port"`
	InsecureTLS    bool   `yaml:"insecure_tls"`
	RedirectDomain string `yaml:"redirect_domain"`
	// Timeout is the HTTP request timeout in seconds.
	Timeout int `yaml:"timeout"`
}

// ExporterConfig holds settings for the Prometheus exporter.
type ExporterConfig struct {
	Port int `yaml:"port"`
	// PollInterval is the metrics refresh interval in seconds.
	PollInterval int `yaml:"poll_interval"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Connection ConnectionConfig `yaml:"connection"`
	Exporter   ExporterConfig   `yaml:"exporter"`
}

// LoadConfig reads and parses a YAML configuration file from the given path.
// It returns a pointer to the populated Config and any error encountered.
// On error, nil is returned for the config pointer.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a new Config populated with sensible default values.
// Each call returns a distinct instance.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Connection: ConnectionConfig{
			HTTPPort:  80,
			HTTPSPort: 443,
			Timeout:   30,
		},
		Exporter: ExporterConfig{
			Port:         9718,
			PollInterval: 30,
		},
	}
}

// LoadDotenv loads a .env file into the process environment if one exists at
// the given path (or "./.env" when path is empty). A missing file is not an
// error; variables already set in the environment win.
func LoadDotenv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides updates cfg in place with values from environment variables.
// Recognized variables:
//   - UNRAID_HOST overrides cfg.Connection.Host
//   - UNRAID_API_KEY overrides cfg.Connection.APIKey
//   - UNRAID_HTTP_PORT / UNRAID_HTTPS_PORT override the probe ports
//   - UNRAID_INSECURE_TLS overrides cfg.Connection.InsecureTLS
//   - UNRAID_TIMEOUT overrides cfg.Connection.Timeout
//   - UNRAID_MCP_AUTH_TOKEN overrides cfg.Server.AuthToken
func ApplyEnvOverrides(cfg *Config) {
	if host := os.Getenv("UNRAID_HOST"); host != "" {
		cfg.Connection.Host = host
	}
	if key := os.Getenv("UNRAID_API_KEY"); key != "" {
		cfg.Connection.APIKey = key
	}
	if port, ok := envInt("UNRAID_HTTP_PORT"); ok {
		cfg.Connection.HTTPPort = port
	}
	if port, ok := envInt("UNRAID_HTTPS_PORT"); ok {
		cfg.Connection.HTTPSPort = port
	}
	if v := os.Getenv("UNRAID_INSECURE_TLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Connection.InsecureTLS = b
		}
	}
	if timeout, ok := envInt("UNRAID_TIMEOUT"); ok {
		cfg.Connection.Timeout = timeout
	}
	if token := os.Getenv("UNRAID_MCP_AUTH_TOKEN"); token != "" {
		cfg.Server.AuthToken = token
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate reports whether the connection section is usable.
func (c *Config) Validate() error {
	if c.Connection.Host == "" {
		return fmt.Errorf("connection.host is required (set UNRAID_HOST or the config file)")
	}
	if c.Connection.APIKey == "" {
		return fmt.Errorf("connection.api_key is required (set UNRAID_API_KEY or the config file)")
	}
	return nil
}

// EnsureAuthToken generates a random auth token and sets it on cfg if
// cfg.Server.AuthToken is empty. It returns the token (existing or generated)
// and any error encountered during generation.
func EnsureAuthToken(cfg *Config) (string, error) {
	if cfg.Server.AuthToken != "" {
		return cfg.Server.AuthToken, nil
	}
	token, err := GenerateRandomToken()
	if err != nil {
		return "", fmt.Errorf("generate auth token: %w", err)
	}
	cfg.Server.AuthToken = token
	return token, nil
}

// GenerateRandomToken returns a 32-character hex-encoded cryptographically
// random token string.
func GenerateRandomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand.Read: %w", err)
	}
	return hex.EncodeToString(b), nil
}

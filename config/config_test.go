package config

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_LoadConfig_Cases(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full config",
			yaml: `
server:
  port: 9090
  auth_token: secret
connection:
  host: tower.local
  api_key: abc123
  http_port: 8080
  https_port: 8443
  insecure_tls: true
  timeout: 10
exporter:
  port: 9100
  poll_interval: 15
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.Port != 9090 || cfg.Server.AuthToken != "secret" {
					t.Errorf("Server = %+v", cfg.Server)
				}
				if cfg.Connection.Host != "tower.local" || cfg.Connection.APIKey != "abc123" {
					t.Errorf("Connection = %+v", cfg.Connection)
				}
				if cfg.Connection.HTTPPort != 8080 || cfg.Connection.HTTPSPort != 8443 {
					t.Errorf("Connection ports = %+v", cfg.Connection)
				}
				if !cfg.Connection.InsecureTLS || cfg.Connection.Timeout != 10 {
					t.Errorf("Connection = %+v", cfg.Connection)
				}
				if cfg.Exporter.Port != 9100 || cfg.Exporter.PollInterval != 15 {
					t.Errorf("Exporter = %+v", cfg.Exporter)
				}
			},
		},
		{
			name: "partial config keeps zero values",
			yaml: "connection:\n  host: tower.local\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Connection.Host != "tower.local" {
					t.Errorf("Host = %q", cfg.Connection.Host)
				}
				if cfg.Server.Port != 0 {
					t.Errorf("Server.Port = %d, want 0 (file does not set it)", cfg.Server.Port)
				}
			},
		},
		{
			name:    "invalid YAML",
			yaml:    "connection: [not a map",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			cfg, err := LoadConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func Test_LoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Connection.HTTPPort != 80 || cfg.Connection.HTTPSPort != 443 {
		t.Errorf("Connection ports = %+v", cfg.Connection)
	}
	if cfg.Connection.Timeout != 30 {
		t.Errorf("Connection.Timeout = %d, want 30", cfg.Connection.Timeout)
	}
	if cfg.Exporter.PollInterval != 30 {
		t.Errorf("Exporter.PollInterval = %d, want 30", cfg.Exporter.PollInterval)
	}

	// Distinct instances.
	other := DefaultConfig()
	other.Server.Port = 1
	if cfg.Server.Port == 1 {
		t.Error("DefaultConfig instances share state")
	}
}

func Test_ApplyEnvOverrides(t *testing.T) {
	t.Setenv("UNRAID_HOST", "192.168.1.100")
	t.Setenv("UNRAID_API_KEY", "env-key")
	t.Setenv("UNRAID_HTTP_PORT", "8080")
	t.Setenv("UNRAID_HTTPS_PORT", "8443")
	t.Setenv("UNRAID_INSECURE_TLS", "true")
	t.Setenv("UNRAID_TIMEOUT", "12")
	t.Setenv("UNRAID_MCP_AUTH_TOKEN", "tok")

	cfg := DefaultConfig()
	ApplyEnvOverrides(cfg)

	if cfg.Connection.Host != "192.168.1.100" || cfg.Connection.APIKey != "env-key" {
		t.Errorf("Connection = %+v", cfg.Connection)
	}
	if cfg.Connection.HTTPPort != 8080 || cfg.Connection.HTTPSPort != 8443 {
		t.Errorf("Connection ports = %+v", cfg.Connection)
	}
	if !cfg.Connection.InsecureTLS || cfg.Connection.Timeout != 12 {
		t.Errorf("Connection = %+v", cfg.Connection)
	}
	if cfg.Server.AuthToken != "tok" {
		t.Errorf("AuthToken = %q", cfg.Server.AuthToken)
	}
}

func Test_ApplyEnvOverrides_IgnoresInvalid(t *testing.T) {
	t.Setenv("UNRAID_HTTP_PORT", "not-a-number")
	t.Setenv("UNRAID_INSECURE_TLS", "maybe")

	cfg := DefaultConfig()
	ApplyEnvOverrides(cfg)

	if cfg.Connection.HTTPPort != 80 {
		t.Errorf("HTTPPort = %d, want untouched 80", cfg.Connection.HTTPPort)
	}
	if cfg.Connection.InsecureTLS {
		t.Error("InsecureTLS flipped by unparsable value")
	}
}

func Test_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate passed without host and key")
	}
	cfg.Connection.Host = "tower.local"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate passed without key")
	}
	cfg.Connection.APIKey = "abc"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func Test_LoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("UNRAID_HOST=dotenv.local\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv("UNRAID_HOST", "") // ensure a clean slate, godotenv does not override
	os.Unsetenv("UNRAID_HOST")

	if err := LoadDotenv(path); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	if got := os.Getenv("UNRAID_HOST"); got != "dotenv.local" {
		t.Errorf("UNRAID_HOST = %q, want dotenv.local", got)
	}

	// Missing file is not an error.
	if err := LoadDotenv(filepath.Join(dir, "absent.env")); err != nil {
		t.Errorf("LoadDotenv(absent) = %v, want nil", err)
	}
}

func Test_EnsureAuthToken(t *testing.T) {
	cfg := &Config{}
	token, err := EnsureAuthToken(cfg)
	if err != nil {
		t.Fatalf("EnsureAuthToken: %v", err)
	}
	if len(token) != 32 {
		t.Errorf("token length = %d, want 32 hex chars", len(token))
	}
	if cfg.Server.AuthToken != token {
		t.Error("token not stored on config")
	}

	// Existing token wins.
	again, err := EnsureAuthToken(cfg)
	if err != nil {
		t.Fatalf("EnsureAuthToken: %v", err)
	}
	if again != token {
		t.Errorf("EnsureAuthToken regenerated: %q != %q", again, token)
	}
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Transport TransportConfig
	Data      DataConfig
	Payload   PayloadConfig
	Manifest  ManifestConfig
	Journal   JournalConfig
	Attach    AttachConfig
	Auth      AuthConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// TransportConfig holds transport daemon configuration.
type TransportConfig struct {
	Address string `envconfig:"TRANSPORT_ADDR" default:"localhost:50051"`
	Enabled bool   `envconfig:"TRANSPORT_ENABLED" default:"true"`
}

// DataConfig holds the on-disk data root.
type DataConfig struct {
	Root string `envconfig:"DATA_ROOT" default:""`
}

// PayloadConfig holds payload store and registry configuration.
// Cert paths are optional; when all three are set the registry client
// speaks HTTP/2 with mTLS.
type PayloadConfig struct {
	Dir           string `envconfig:"PAYLOAD_DIR" default:""`
	RegistryURL   string `envconfig:"REGISTRY_URL" default:""`
	RegistryToken string `envconfig:"REGISTRY_TOKEN" default:""`
	RegistryCert  string `envconfig:"REGISTRY_CERT" default:""`
	RegistryKey   string `envconfig:"REGISTRY_KEY" default:""`
	RegistryCA    string `envconfig:"REGISTRY_CA" default:""`
}

// ManifestConfig holds launch manifest configuration.
type ManifestConfig struct {
	Dir     string `envconfig:"MANIFEST_DIR" default:""`
	Watch   bool   `envconfig:"MANIFEST_WATCH" default:"true"`
	Enabled bool   `envconfig:"MANIFEST_ENABLED" default:"true"`
}

// JournalConfig holds event journal configuration.
type JournalConfig struct {
	Dir      string `envconfig:"JOURNAL_DIR" default:""`
	InMemory bool   `envconfig:"JOURNAL_IN_MEMORY" default:"false"`
	Enabled  bool   `envconfig:"JOURNAL_ENABLED" default:"true"`
}

// AttachConfig holds attach flow configuration.
type AttachConfig struct {
	Timeout time.Duration `envconfig:"ATTACH_TIMEOUT" default:"30s"`
}

// AuthConfig holds API authentication configuration. TokenHash is a bcrypt
// hash of the bearer token; empty disables auth on write endpoints.
type AuthConfig struct {
	TokenHash string `envconfig:"AUTH_TOKEN_HASH" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Transport: TransportConfig{
			Address: "localhost:50051",
			Enabled: true,
		},
		Manifest: ManifestConfig{
			Watch:   true,
			Enabled: true,
		},
		Journal: JournalConfig{
			Enabled: true,
		},
		Attach: AttachConfig{
			Timeout: 30 * time.Second,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}

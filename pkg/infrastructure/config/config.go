package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Env is the environment the register runs in
type Env string

const (
	EnvLocal  Env = "local"
	EnvDocker Env = "docker"
)

// Backend selects where catalog, customers and sales are read from and written to
type Backend string

const (
	// BackendMemory serves everything from files loaded at start-up
	BackendMemory Backend = "memory"
	// BackendREST talks to the POS API
	BackendREST Backend = "rest"
)

// Config holds settings read from POS_-prefixed environment variables
type Config struct {
	AppEnv         Env           `env:"APP_ENV" envDefault:"local"`
	Backend        Backend       `env:"BACKEND" envDefault:"memory"`
	APIBaseURL     string        `env:"API_BASE_URL" envDefault:"http://localhost:8000/api"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	Username       string        `env:"USERNAME"`
	Password       string        `env:"PASSWORD"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT"`
}

// Load parses the environment and validates the result
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses the given variables instead of the process environment when
// environment is non-nil
func LoadFrom(environment map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: "POS_"}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Backend = Backend(strings.ToLower(string(cfg.Backend)))
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency
func (c Config) Validate() error {
	if c.AppEnv != EnvLocal && c.AppEnv != EnvDocker {
		return fmt.Errorf("invalid POS_APP_ENV: %s (must be 'local' or 'docker')", c.AppEnv)
	}
	switch c.Backend {
	case BackendMemory:
	case BackendREST:
		u, err := url.Parse(c.APIBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid POS_API_BASE_URL: %q", c.APIBaseURL)
		}
	default:
		return fmt.Errorf("invalid POS_BACKEND: %s (must be 'memory' or 'rest')", c.Backend)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("POS_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

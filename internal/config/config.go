package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Host            string        `json:"host" validate:"required,ip|hostname"`
	Port            int           `json:"port" validate:"gte=1,lte=65535"`
	Env             string        `json:"env" validate:"required"`
	HTTPTimeout     time.Duration `json:"http_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `json:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"gt=0"`

	// Logging
	LogLevel  string `json:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogOutput string `json:"log_output" validate:"required"`
	LogPretty bool   `json:"log_pretty"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	r := &envReader{}
	cfg := &Config{
		Host:            r.str("HOST", "0.0.0.0"),
		Port:            r.int("PORT", 80),
		Env:             r.str("APP_ENV", "development"),
		HTTPTimeout:     r.duration("HTTP_TIMEOUT", 30*time.Second),
		IdleTimeout:     r.duration("IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: r.duration("SHUTDOWN_TIMEOUT", 10*time.Second),

		LogLevel:  r.str("LOG_LEVEL", "info"),
		LogOutput: r.str("LOG_OUTPUT", "stdout"),
	}
	cfg.LogPretty = r.bool("LOG_PRETTY", cfg.IsDevelopment())

	if err := errors.Join(r.errs...); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// envReader collects parse errors so every bad variable is reported at once.
type envReader struct {
	errs []error
}

func (r *envReader) str(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func (r *envReader) int(key string, defaultValue int) int {
	valueStr := r.str(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return value
}

func (r *envReader) bool(key string, defaultValue bool) bool {
	valueStr := r.str(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return value
}

func (r *envReader) duration(key string, defaultValue time.Duration) time.Duration {
	valueStr := r.str(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return value
}

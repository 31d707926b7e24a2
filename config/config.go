// Package config loads and validates the application configuration from
// environment variables.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultPharmacyAPIURL is the production upstream screening directory.
const DefaultPharmacyAPIURL = "https://api.hirassa.com/diabetes-screening"

// Config holds all application configuration.
type Config struct {
	Port            string
	Address         string
	Env             string
	LogLevel        string
	APIKey          string        // Upstream credential, never sent to browsers
	PharmacyAPIURL  string        // Base URL of the upstream pharmacy API
	UpstreamTimeout time.Duration // Per-call timeout for upstream requests
	MaxRequestBody  int64         // Maximum request body size in bytes
	MaxHeaderSize   int64         // Maximum request header size in bytes
}

// Load reads configuration from the environment and validates it. A missing
// API key is reported by the caller, not rejected here: the service still
// serves the catalog endpoints without it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "8000"),
		Address:         getEnvWithDefault("ADDRESS", "127.0.0.1"),
		Env:             getEnvWithDefault("ENV", "dev"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		APIKey:          os.Getenv("DIABETES_SCREENING_API_KEY"),
		PharmacyAPIURL:  getEnvWithDefault("PHARMACY_API_URL", DefaultPharmacyAPIURL),
		UpstreamTimeout: time.Duration(getIntEnvWithDefault("UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
		MaxRequestBody:  getInt64EnvWithDefault("MAX_REQUEST_BODY", 65536),   // 64KB, answers payloads are tiny
		MaxHeaderSize:   getInt64EnvWithDefault("MAX_HEADER_SIZE", 1048576), // 1MB
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if err := validatePort(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	if err := validateAddress(cfg.Address); err != nil {
		return fmt.Errorf("invalid ADDRESS: %w", err)
	}

	if err := validateEnv(cfg.Env); err != nil {
		return fmt.Errorf("invalid ENV: %w", err)
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := validatePharmacyAPIURL(cfg.PharmacyAPIURL); err != nil {
		return fmt.Errorf("invalid PHARMACY_API_URL: %w", err)
	}

	if err := validateUpstreamTimeout(cfg.UpstreamTimeout); err != nil {
		return fmt.Errorf("invalid UPSTREAM_TIMEOUT_SECONDS: %w", err)
	}

	if err := validateSizeLimit(cfg.MaxRequestBody, "MAX_REQUEST_BODY"); err != nil {
		return err
	}

	if err := validateSizeLimit(cfg.MaxHeaderSize, "MAX_HEADER_SIZE"); err != nil {
		return err
	}

	return nil
}

func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	if portNum < 1024 {
		return fmt.Errorf("PORT %d is privileged (less than 1024), use ports 1024-65535", portNum)
	}

	return nil
}

func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("ADDRESS cannot be empty")
	}

	if address == "127.0.0.1" || address == "::1" || address == "localhost" {
		return nil
	}

	if ip := net.ParseIP(address); ip == nil {
		return fmt.Errorf("ADDRESS must be a valid IP address or 'localhost', got: %s", address)
	}

	return nil
}

func validateEnv(env string) error {
	validEnvs := []string{"dev", "staging", "prod", "test"}
	env = strings.ToLower(env)

	for _, validEnv := range validEnvs {
		if env == validEnv {
			return nil
		}
	}

	return fmt.Errorf("ENV must be one of: %v, got: %s", validEnvs, env)
}

func validateLogLevel(logLevel string) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	logLevel = strings.ToLower(logLevel)

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

func validatePharmacyAPIURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("PHARMACY_API_URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("PHARMACY_API_URL is not a valid URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("PHARMACY_API_URL must use http or https, got: %s", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("PHARMACY_API_URL has no host")
	}

	return nil
}

func validateUpstreamTimeout(timeout time.Duration) error {
	if timeout < time.Second {
		return fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS must be at least 1, got: %v", timeout)
	}

	if timeout > 120*time.Second {
		return fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS is too large (max 120), got: %v", timeout)
	}

	return nil
}

func validateSizeLimit(size int64, configName string) error {
	if size <= 0 {
		return fmt.Errorf("%s must be positive, got: %d", configName, size)
	}

	if size > 100*1024*1024 {
		return fmt.Errorf("%s is too large (max 100MB), got: %d bytes", configName, size)
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64EnvWithDefault gets an environment variable as int64 with a default value
func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ADDRESS", "ENV", "LOG_LEVEL",
		"DIABETES_SCREENING_API_KEY", "PHARMACY_API_URL",
		"UPSTREAM_TIMEOUT_SECONDS", "MAX_REQUEST_BODY", "MAX_HEADER_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("Address = %q, want 127.0.0.1", cfg.Address)
	}
	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want dev", cfg.Env)
	}
	if cfg.PharmacyAPIURL != DefaultPharmacyAPIURL {
		t.Errorf("PharmacyAPIURL = %q, want default", cfg.PharmacyAPIURL)
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 10s", cfg.UpstreamTimeout)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
}

func TestLoadMissingAPIKeyIsNotFatal(t *testing.T) {
	// The credential being unset is a recoverable, reported condition
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should succeed without API key, got: %v", err)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "prod")
	t.Setenv("DIABETES_SCREENING_API_KEY", "test-key")
	t.Setenv("PHARMACY_API_URL", "https://upstream.example.com/screening")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.Env != "prod" {
		t.Errorf("Env = %q, want prod", cfg.Env)
	}
	if cfg.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want test-key", cfg.APIKey)
	}
	if cfg.PharmacyAPIURL != "https://upstream.example.com/screening" {
		t.Errorf("PharmacyAPIURL = %q", cfg.PharmacyAPIURL)
	}
	if cfg.UpstreamTimeout != 30*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 30s", cfg.UpstreamTimeout)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "invalid port", key: "PORT", value: "notaport", wantErr: "PORT"},
		{name: "privileged port", key: "PORT", value: "80", wantErr: "privileged"},
		{name: "port out of range", key: "PORT", value: "70000", wantErr: "PORT"},
		{name: "invalid address", key: "ADDRESS", value: "not an ip", wantErr: "ADDRESS"},
		{name: "invalid env", key: "ENV", value: "production!", wantErr: "ENV"},
		{name: "invalid log level", key: "LOG_LEVEL", value: "verbose", wantErr: "LOG_LEVEL"},
		{name: "invalid upstream url", key: "PHARMACY_API_URL", value: "ftp://example.com", wantErr: "PHARMACY_API_URL"},
		{name: "upstream timeout too small", key: "UPSTREAM_TIMEOUT_SECONDS", value: "0", wantErr: "UPSTREAM_TIMEOUT_SECONDS"},
		{name: "upstream timeout too large", key: "UPSTREAM_TIMEOUT_SECONDS", value: "600", wantErr: "UPSTREAM_TIMEOUT_SECONDS"},
		{name: "negative request body", key: "MAX_REQUEST_BODY", value: "-1", wantErr: "MAX_REQUEST_BODY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadAcceptsLocalhost(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDRESS", "localhost")

	if _, err := Load(); err != nil {
		t.Errorf("Load() with localhost address unexpected error: %v", err)
	}
}

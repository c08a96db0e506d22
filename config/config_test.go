package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.DataSource.UsesDatabase() {
		t.Error("expected remote data source by default")
	}
	if cfg.Redis.Enabled {
		t.Error("expected redis to be disabled by default")
	}
	if cfg.Email.CanSendAlerts() {
		t.Error("expected alerts to be disabled by default")
	}
	if cfg.Display.Currency != "USD" {
		t.Errorf("expected USD, got %s", cfg.Display.Currency)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REMOTE_API_URL", "https://api.example.com/v1/")
	t.Setenv("DATA_SOURCE", "Database")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("EMAIL_ALERTS_ENABLED", "true")
	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("DISPLAY_CURRENCY", "eur")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Remote.BaseURL != "https://api.example.com/v1" {
		t.Errorf("expected trailing slash to be trimmed, got %s", cfg.Remote.BaseURL)
	}
	if !cfg.DataSource.UsesDatabase() {
		t.Error("expected database data source")
	}
	if cfg.Redis.CacheTTL != 2*time.Minute {
		t.Errorf("expected 2m cache ttl, got %v", cfg.Redis.CacheTTL)
	}
	if !cfg.Email.CanSendAlerts() {
		t.Error("expected alerts to be enabled")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Display.Currency != "EUR" {
		t.Errorf("expected EUR, got %s", cfg.Display.Currency)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("REDIS_ENABLED", "maybe")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected fallback port, got %d", cfg.Server.Port)
	}
	if cfg.Redis.Enabled {
		t.Error("expected fallback to disabled")
	}
	if cfg.Redis.CacheTTL != 30*time.Second {
		t.Errorf("expected fallback ttl, got %v", cfg.Redis.CacheTTL)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 {
		t.Errorf("expected default origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestJWTConfig_Verifies(t *testing.T) {
	tests := []struct {
		name string
		cfg  JWTConfig
		want bool
	}{
		{name: "verify with secret", cfg: JWTConfig{Secret: "s3cret", Verify: true}, want: true},
		{name: "verify without secret", cfg: JWTConfig{Verify: true}},
		{name: "secret without verify", cfg: JWTConfig{Secret: "s3cret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Verifies(); got != tt.want {
				t.Errorf("Verifies() = %v, want %v", got, tt.want)
			}
		})
	}
}

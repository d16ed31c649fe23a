package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkaraca/careergate/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	// A missing file is fine; defaults apply.
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("Server.Port = %q, want 3000", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "http://127.0.0.1:8000" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Session.CookieName != "careergate_sid" {
		t.Errorf("Session.CookieName = %q", cfg.Session.CookieName)
	}
	if got := cfg.SessionTTL(); got != 720*time.Hour {
		t.Errorf("SessionTTL() = %v, want 720h", got)
	}
	if got := cfg.UpstreamTimeout(); got != 0 {
		t.Errorf("UpstreamTimeout() = %v, want 0", got)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "4100"
upstream:
  base_url: "http://backend.internal:9000"
  timeout: "5s"
session:
  ttl: "24h"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "4100" {
		t.Errorf("Server.Port = %q, want 4100", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "http://backend.internal:9000" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if got := cfg.UpstreamTimeout(); got != 5*time.Second {
		t.Errorf("UpstreamTimeout() = %v, want 5s", got)
	}
	if got := cfg.SessionTTL(); got != 24*time.Hour {
		t.Errorf("SessionTTL() = %v, want 24h", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"4100\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("SERVER_PORT", "5200")
	t.Setenv("UPSTREAM_BASE_URL", "http://override:8000")

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "5200" {
		t.Errorf("Server.Port = %q, want env override 5200", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "http://override:8000" {
		t.Errorf("Upstream.BaseURL = %q, want env override", cfg.Upstream.BaseURL)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad base url", "upstream:\n  base_url: \"::not-a-url\"\n"},
		{"bad timeout", "upstream:\n  timeout: \"soon\"\n"},
		{"bad ttl", "session:\n  ttl: \"forever\"\n"},
		{"bad seal key", "session:\n  seal_key: \"abc\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := config.LoadConfig(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSealKeyBytes(t *testing.T) {
	cfg := &config.Config{}
	key := cfg.SealKeyBytes()
	if len(key) != 32 {
		t.Fatalf("derived key length = %d, want 32", len(key))
	}

	cfg.Session.SealKey = "000102030405060708090a0b0c0d0e0f000102030405060708090a0b0c0d0e0f"
	configured := cfg.SealKeyBytes()
	if len(configured) != 32 {
		t.Fatalf("configured key length = %d, want 32", len(configured))
	}
	if string(configured) == string(key) {
		t.Error("configured key should differ from the derived development key")
	}
}

package config

import (
	"strings"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", 3 * time.Second},
		{"250ms", 250 * time.Millisecond},
		{"not-a-duration", 3 * time.Second},
		{"-5s", 3 * time.Second},
	}

	for _, tt := range tests {
		t.Setenv("CFG_DURATION", tt.value)
		if got := getDuration("CFG_DURATION", 3*time.Second); got != tt.want {
			t.Errorf("getDuration(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestGetList(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"", []string{"*"}},
		{" , ", []string{"*"}},
		{"https://app.example.com", []string{"https://app.example.com"}},
		{"https://a.example.com, https://b.example.com", []string{"https://a.example.com", "https://b.example.com"}},
	}

	for _, tt := range tests {
		t.Setenv("CFG_LIST", tt.value)
		got := getList("CFG_LIST", []string{"*"})
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("getList(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	for _, key := range []string{
		"PORT", "DATABASE_URL", "LOG_LEVEL", "SEED", "BACKEND_BASE_URL", "BACKEND_TIMEOUT",
		"BMR_OTHER_GENDER_FORMULA", "OPENAI_API_KEY", "OPENAI_GUIDANCE_MODEL", "OTEL_EXPORTER_OTLP_ENDPOINT",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected CORS to allow any origin by default, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.BackendBaseURL != "" || cfg.BackendTimeout != 10*time.Second {
		t.Fatalf("backend defaults not applied: %+v", cfg)
	}
	if cfg.BMROtherGenderFormula != "female" || cfg.OpenAIGuidanceModel != "gpt-4o-mini" {
		t.Fatalf("formula/model defaults not applied: %+v", cfg)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("SEED", "true")
	t.Setenv("BACKEND_BASE_URL", "https://api.example.com")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("BMR_OTHER_GENDER_FORMULA", "average")
	t.Setenv("OPENAI_API_KEY", "key")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.BackendBaseURL != "https://api.example.com" || cfg.BackendTimeout != 3*time.Second {
		t.Fatalf("backend overrides missing: %+v", cfg)
	}
	if cfg.BMROtherGenderFormula != "average" || cfg.OpenAIAPIKey != "key" {
		t.Fatalf("overrides missing: %+v", cfg)
	}
}

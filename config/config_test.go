package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("unexpected port: %d", cfg.Server.Port)
	}
	if cfg.Groq.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected model: %s", cfg.Groq.Model)
	}
	if cfg.Groq.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %v", cfg.Groq.Temperature)
	}
	if cfg.Groq.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Groq.Timeout)
	}
	if cfg.Assistant.HistoryWindow != 20 {
		t.Fatalf("unexpected history window: %d", cfg.Assistant.HistoryWindow)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MYTASK_SERVER_PORT", "9090")
	t.Setenv("MYTASK_GROQ_API_KEY", "gsk_test")
	t.Setenv("MYTASK_ASSISTANT_MAX_TRANSACTION", "1000000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Fatalf("env port not applied: %d", cfg.Server.Port)
	}
	if cfg.Groq.APIKey != "gsk_test" {
		t.Fatalf("env api key not applied")
	}
	if cfg.Assistant.MaxTransaction != 1000000 {
		t.Fatalf("env ceiling not applied: %v", cfg.Assistant.MaxTransaction)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

package config_test

import (
	"testing"
	"time"

	"github.com/origenlab/backend/internal/infrastructure/config"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(env(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerAddress != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.ServerAddress)
	}
	if cfg.ContentProvider != config.ProviderLLM {
		t.Errorf("expected llm provider, got %q", cfg.ContentProvider)
	}
	if cfg.FeedbackDelay != 1500*time.Millisecond {
		t.Errorf("expected 1.5s feedback delay, got %v", cfg.FeedbackDelay)
	}
	if cfg.FetchWorkers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.FetchWorkers)
	}
	if cfg.JournalPath != "origen.db" {
		t.Errorf("expected origen.db, got %q", cfg.JournalPath)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := config.FromEnv(env(map[string]string{
		"SERVER_ADDRESS":   ":9090",
		"CONTENT_PROVIDER": "static",
		"LLM_API_KEY":      "secret",
		"FEEDBACK_DELAY":   "250ms",
		"SESSION_IDLE_TTL": "30m",
		"FETCH_WORKERS":    "8",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerAddress != ":9090" || cfg.ContentProvider != config.ProviderStatic || cfg.LLMAPIKey != "secret" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.FeedbackDelay != 250*time.Millisecond || cfg.SessionIdleTTL != 30*time.Minute {
		t.Errorf("unexpected durations %v %v", cfg.FeedbackDelay, cfg.SessionIdleTTL)
	}
	if cfg.FetchWorkers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.FetchWorkers)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad duration": {"FETCH_TIMEOUT": "soon"},
		"zero workers": {"FETCH_WORKERS": "0"},
		"bad workers":  {"FETCH_WORKERS": "many"},
		"bad provider": {"CONTENT_PROVIDER": "gemini"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := config.FromEnv(env(vars)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderLLM    = "llm"
	ProviderStatic = "static"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Content Provider
	ContentProvider string // "llm" or "static"
	LLMURL          string // OpenAI-compatible endpoint, e.g. "http://localhost:1234"
	LLMModel        string // model name, e.g. "qwen3-8b"
	LLMAPIKey       string // optional bearer token

	JournalPath string // SQLite file for the generation journal

	// Session engine
	FeedbackDelay  time.Duration
	FetchTimeout   time.Duration
	SessionIdleTTL time.Duration
	FetchWorkers   int
}

// Load reads the environment, after a .env file if one exists, and exits
// on invalid values.
func Load() *Config {
	_ = godotenv.Load()
	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	p := parser{getenv: getenv}
	cfg := &Config{
		ServerAddress:   p.str("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout: p.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		ContentProvider: p.str("CONTENT_PROVIDER", ProviderLLM),
		LLMURL:          p.str("LLM_URL", "http://localhost:1234"),
		LLMModel:        p.str("LLM_MODEL", "qwen3-8b"),
		LLMAPIKey:       p.str("LLM_API_KEY", ""),
		JournalPath:     p.str("JOURNAL_PATH", "origen.db"),
		FeedbackDelay:   p.duration("FEEDBACK_DELAY", 1500*time.Millisecond),
		FetchTimeout:    p.duration("FETCH_TIMEOUT", 90*time.Second),
		SessionIdleTTL:  p.duration("SESSION_IDLE_TTL", 2*time.Hour),
		FetchWorkers:    p.positiveInt("FETCH_WORKERS", 4),
	}
	if p.err != nil {
		return nil, p.err
	}
	if cfg.ContentProvider != ProviderLLM && cfg.ContentProvider != ProviderStatic {
		return nil, fmt.Errorf("CONTENT_PROVIDER=%q must be %q or %q", cfg.ContentProvider, ProviderLLM, ProviderStatic)
	}
	return cfg, nil
}

// parser keeps the first error so FromEnv can read every key in one pass.
type parser struct {
	getenv func(string) string
	err    error
}

func (p *parser) str(k, fallback string) string {
	if v := p.getenv(k); v != "" {
		return v
	}
	return fallback
}

func (p *parser) duration(k string, fallback time.Duration) time.Duration {
	v := p.getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(fmt.Errorf("%s=%q is not a valid duration: %w", k, v, err))
		return fallback
	}
	return d
}

func (p *parser) positiveInt(k string, fallback int) int {
	v := p.getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		p.fail(fmt.Errorf("%s=%q is not a positive integer", k, v))
		return fallback
	}
	return n
}

func (p *parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

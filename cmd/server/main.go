package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/origenlab/backend/internal/api"
	"github.com/origenlab/backend/internal/content"
	"github.com/origenlab/backend/internal/infrastructure/config"
	"github.com/origenlab/backend/internal/service"
	"github.com/origenlab/backend/internal/store"

	_ "github.com/origenlab/backend/docs" // generated swagger docs
)

// @title           Origen API
// @version         1.0
// @description     Study sessions about the origin of life: topics, quizzes, activities, arcade games and a game show.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	journal, err := store.NewSQLite(cfg.JournalPath)
	if err != nil {
		logger.Error("failed to open journal", "error", err)
		os.Exit(1)
	}
	defer journal.Close()

	var provider content.Provider = content.Static{}
	if cfg.ContentProvider == config.ProviderLLM {
		provider = content.NewLLMProvider(cfg.LLMURL, cfg.LLMModel, cfg.LLMAPIKey)
	}
	logger.Info("content provider", "kind", cfg.ContentProvider, "model", cfg.LLMModel)

	engine := service.NewEngine(content.NewSource(provider, journal, logger), service.Options{
		FeedbackDelay: cfg.FeedbackDelay,
		FetchTimeout:  cfg.FetchTimeout,
		IdleTTL:       cfg.SessionIdleTTL,
		Workers:       cfg.FetchWorkers,
	}, logger)
	defer engine.Close()

	handler := api.NewHandler(engine, journal, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

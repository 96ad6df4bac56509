package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/origenlab/backend/internal/content"
	"github.com/origenlab/backend/internal/infrastructure/config"
	"github.com/origenlab/backend/internal/service"
	"github.com/origenlab/backend/internal/store"
)

var (
	providerKind string
	journalPath  string
	llmURL       string
	llmModel     string
	verbose      bool

	cfg     *config.Config
	journal *store.SQLiteStore
	engine  *service.Engine
)

func Execute() error {
	root := &cobra.Command{
		Use:          "origenctl",
		Short:        "Study the origin of life from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			if cmd.Flags().Changed("provider") {
				cfg.ContentProvider = providerKind
			}
			if cmd.Flags().Changed("journal") {
				cfg.JournalPath = journalPath
			}
			if cmd.Flags().Changed("llm-url") {
				cfg.LLMURL = llmURL
			}
			if cmd.Flags().Changed("model") {
				cfg.LLMModel = llmModel
			}
			return setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if engine != nil {
				engine.Close()
			}
			if journal != nil {
				journal.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&providerKind, "provider", "", "content provider: static or llm (default $CONTENT_PROVIDER)")
	root.PersistentFlags().StringVar(&journalPath, "journal", "", "generation journal file (default $JOURNAL_PATH)")
	root.PersistentFlags().StringVar(&llmURL, "llm-url", "", "OpenAI-compatible endpoint (default $LLM_URL)")
	root.PersistentFlags().StringVar(&llmModel, "model", "", "model name (default $LLM_MODEL)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine activity to stderr")

	root.AddCommand(topicsCmd(), learnCmd(), quizCmd(), hangmanCmd(), demoCmd(), generationsCmd())
	return root.Execute()
}

func setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var provider content.Provider
	switch cfg.ContentProvider {
	case config.ProviderStatic:
		provider = content.Static{}
	case config.ProviderLLM:
		provider = content.NewLLMProvider(cfg.LLMURL, cfg.LLMModel, cfg.LLMAPIKey)
	default:
		return fmt.Errorf("unknown provider %q (want %s or %s)", cfg.ContentProvider, config.ProviderStatic, config.ProviderLLM)
	}

	var err error
	journal, err = store.NewSQLite(cfg.JournalPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	engine = service.NewEngine(content.NewSource(provider, journal, logger), service.Options{
		FeedbackDelay: cfg.FeedbackDelay,
		FetchTimeout:  cfg.FetchTimeout,
		Workers:       cfg.FetchWorkers,
	}, logger)
	return nil
}

// settle waits for the session's fetches and timers, bounded by the fetch
// timeout, and returns the fresh snapshot.
func settle(cmd *cobra.Command, id string) (service.Snapshot, error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.FetchTimeout+time.Second)
	defer cancel()
	if err := engine.WaitForSession(ctx, id); err != nil {
		return service.Snapshot{}, err
	}
	return engine.Get(id)
}

func dispatch(id string, a service.Action) (service.Snapshot, error) {
	snap, _, err := engine.Dispatch(id, a)
	return snap, err
}

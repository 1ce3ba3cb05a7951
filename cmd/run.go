package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Ityord/aistudy/internal/app"
	"github.com/Ityord/aistudy/internal/history"
	"github.com/Ityord/aistudy/internal/llm"
	"github.com/Ityord/aistudy/internal/quizgen"
	"github.com/Ityord/aistudy/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\n\nSet GEMINI_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY", err)
	}

	hist := loadHistory(ctx, st.HistoryRepo(), os.Stderr)

	return app.Run(app.Deps{
		Generator: quizgen.New(provider, quizgen.DefaultConfig()),
		History:   hist,
	})
}

// loadHistory fills a history store from repo. A failed load starts the
// app with an empty history; the warning goes to w before the
// alt-screen takes over the terminal.
func loadHistory(ctx context.Context, repo history.Repo, w io.Writer) *history.Store {
	hist := history.NewStore(repo)
	if err := hist.Load(ctx); err != nil {
		fmt.Fprintf(w, "warning: could not load quiz history: %v\n", err)
	}
	return hist
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/topocapital/suitability/internal/app"
	"github.com/topocapital/suitability/internal/glossary"
	"github.com/topocapital/suitability/internal/llm"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{Catalog: cat, Events: eventRepo}

	provider, err := llm.NewProviderFromConfig(ctx, cfg.LLM, eventRepo)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		zap.L().Info("no llm provider configured, glossary explanations disabled")
	case err != nil:
		zap.L().Warn("llm provider unavailable", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Provedor de IA indisponível:", err)
		fmt.Fprintln(os.Stderr, "O glossário mostrará apenas as definições básicas.")
	default:
		zap.L().Info("llm provider ready", zap.String("model", provider.ModelID()))
		opts.Glossary = glossary.NewService(provider, glossary.DefaultConfig())
	}

	return app.Run(opts)
}

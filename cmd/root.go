package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/config"
	"github.com/topocapital/suitability/internal/store"
)

var (
	cfg         *config.Config
	flushLogger = func() {}
)

var rootCmd = &cobra.Command{
	Use:          "suitability",
	Short:        "Investor suitability questionnaire",
	Long:         "Suitability: terminal questionnaire that classifies an investor as conservador, moderado or arrojado and shows the matching model portfolio.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(file, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = loaded

		flush, err := config.InitLogger(cfg.Log)
		if err != nil {
			return err
		}
		flushLogger = flush
		zap.L().Debug("command start", zap.String("command", cmd.CommandPath()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		flushLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/suitability/config.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides SUITABILITY_DB_PATH)")
	pf.String("catalog", "", "Path to a YAML or JSON questionnaire catalog")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// openStore opens the database named by the configuration, or the XDG
// default.
func openStore() (*store.Store, error) {
	path := cfg.DB.Path
	var err error
	if path == "" {
		path, err = store.DefaultDBPath()
	} else {
		err = store.EnsureDir(path)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadCatalog returns the configured catalog or the built-in one. Profile
// allocations that do not add up to 100% are logged, not rejected.
func loadCatalog() (*catalog.Catalog, error) {
	c, err := catalog.LoadOrDefault(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	for _, w := range catalog.AllocationWarnings(c) {
		zap.L().Warn("catalog allocation", zap.String("warning", w))
	}
	return c, nil
}

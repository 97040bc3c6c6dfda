package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent completed assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		results, err := s.EventRepo().QueryResults(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(w, "Nenhuma análise concluída ainda.")
			return nil
		}

		fmt.Fprintf(w, "%-19s  %-36s  %9s  %9s  %7s\n", "Data", "Perfil", "Pontuação", "Respostas", "Duração")
		fmt.Fprintln(w, strings.Repeat("─", 90))
		for _, r := range results {
			fmt.Fprintf(w, "%-19s  %-36s  %9.1f  %9s  %7s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				profileName(cat, r.Profile),
				r.Normalized,
				fmt.Sprintf("%d/%d", r.Answered, r.Total),
				fmt.Sprintf("%d:%02d", r.DurationSecs/60, r.DurationSecs%60),
			)
		}

		counts, err := s.EventRepo().CountByProfile(ctx)
		if err != nil {
			return fmt.Errorf("count profiles: %w", err)
		}
		fmt.Fprintln(w)
		for _, c := range counts {
			fmt.Fprintf(w, "%-36s  %d\n", profileName(cat, c.Profile), c.Count)
		}
		return nil
	},
}

func profileName(cat *catalog.Catalog, key string) string {
	if p, ok := cat.Profile(catalog.ProfileKey(key)); ok {
		return p.Name
	}
	return key
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
}

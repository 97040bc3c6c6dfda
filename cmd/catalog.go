package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topocapital/suitability/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, validate and export questionnaire catalogs",
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the questions in the order they are asked",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		n := 0
		for _, sec := range cat.Sections() {
			fmt.Fprintf(w, "%s\n", sec.Name)
			for _, q := range sec.Questions {
				n++
				fmt.Fprintf(w, "  %2d. [id %d, peso %.1f] %s\n", n, q.ID, q.Weight, q.Text)
				for i, opt := range q.Options {
					fmt.Fprintf(w, "        %d) %s\n", i, opt)
				}
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Pontuação máxima: %.1f\n", cat.MaxScore())
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog file against the schema and the questionnaire rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(args[0])
		if err != nil {
			var verr *catalog.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("invalid catalog: %w", err)
			}
			return err
		}
		w := cmd.OutOrStdout()
		for _, warn := range catalog.AllocationWarnings(cat) {
			fmt.Fprintln(w, "aviso:", warn)
		}
		fmt.Fprintf(w, "%s: ok (%d perguntas, %d perfis)\n", args[0], cat.Len(), len(cat.Profiles()))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog as YAML to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return catalog.Export(cmd.OutOrStdout(), cat)
	},
}

func init() {
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/scoring"
	"github.com/topocapital/suitability/internal/wizard"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Classify a set of answers without the interactive questionnaire",
	Example: `  suitability score --answer 0=2 --answer 1=1
  suitability score --file answers.yaml --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, _ := cmd.Flags().GetStringArray("answer")
		file, _ := cmd.Flags().GetString("file")
		asJSON, _ := cmd.Flags().GetBool("json")

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		raw := map[string]int{}
		if file != "" {
			if raw, err = readAnswersFile(file); err != nil {
				return err
			}
		}
		flagAnswers, err := parseAnswerFlags(pairs)
		if err != nil {
			return err
		}
		for k, v := range flagAnswers {
			raw[k] = v
		}

		answers, err := collectAnswers(cat, raw)
		if err != nil {
			return err
		}

		report := newScoreReport(cat, scoring.Evaluate(cat, answers))
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		printScoreReport(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringArrayP("answer", "a", nil, "Answer as <question id>=<option index 0-2>, repeatable")
	scoreCmd.Flags().StringP("file", "f", "", "YAML or JSON file with an `answers` map of question id to option index")
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
}

// answersFile is the on-disk answer set. JSON is read as YAML.
type answersFile struct {
	Answers map[string]int `yaml:"answers"`
}

func readAnswersFile(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	var f answersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse answers %s: %w", path, err)
	}
	if f.Answers == nil {
		f.Answers = map[string]int{}
	}
	return f.Answers, nil
}

func parseAnswerFlags(pairs []string) (map[string]int, error) {
	out := make(map[string]int, len(pairs))
	for _, p := range pairs {
		id, idx, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q: want <id>=<index>", p)
		}
		n, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: %w", p, err)
		}
		out[strings.TrimSpace(id)] = n
	}
	return out, nil
}

// collectAnswers checks every answer against the catalog through the
// wizard's Select. Out-of-range options are rejected. Ids the catalog does
// not know are skipped with a warning, the same way scoring ignores them.
func collectAnswers(cat *catalog.Catalog, raw map[string]int) (scoring.Answers, error) {
	w := wizard.New(cat)
	s, err := w.Start(w.Initial())
	if err != nil {
		return nil, err
	}
	for key, idx := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid question id %q", key)
		}
		next, err := w.Select(s, id, idx)
		if errors.Is(err, wizard.ErrUnknownQuestion) {
			zap.L().Warn("ignoring answer for unknown question", zap.Int("id", id))
			continue
		}
		if err != nil {
			return nil, err
		}
		s = next
	}
	return s.Answers, nil
}

// scoreReport is the printed or JSON-encoded outcome of `score`.
type scoreReport struct {
	Result  scoring.Result   `json:"result"`
	Profile *catalog.Profile `json:"profile,omitempty"`
}

func newScoreReport(cat *catalog.Catalog, r scoring.Result) scoreReport {
	rep := scoreReport{Result: r}
	if p, ok := cat.Profile(r.Profile); ok {
		rep.Profile = &p
	}
	return rep
}

func printScoreReport(w io.Writer, rep scoreReport) {
	r := rep.Result
	fmt.Fprintf(w, "Pontuação:   %.1f de %.1f (%.1f/100)\n", r.Score, r.MaxScore, r.Normalized)
	fmt.Fprintf(w, "Respondidas: %d de %d\n", r.Answered, r.Total)
	if rep.Profile == nil {
		fmt.Fprintf(w, "Perfil:      %s (Perfil não encontrado)\n", r.Profile)
		return
	}

	p := rep.Profile
	fmt.Fprintf(w, "Perfil:      %s\n\n", p.Name)
	fmt.Fprintln(w, p.Description)
	fmt.Fprintln(w)
	for _, m := range p.Metrics.Items() {
		fmt.Fprintf(w, "  %-24s %s\n", m.Label, m.Value)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Alocação do Portfólio")
	for _, s := range p.Allocation {
		if s.Percent <= 0 {
			continue
		}
		fmt.Fprintf(w, "  %-44s %6.1f%%\n", s.Asset, s.Percent)
	}
}

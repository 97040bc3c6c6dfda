package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/scoring"
	"github.com/topocapital/suitability/internal/store"
	"github.com/topocapital/suitability/internal/wizard"
)

func TestParseAnswerFlags(t *testing.T) {
	got, err := parseAnswerFlags([]string{"0=2", " 7 = 1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"0": 2, "7": 1}, got)

	_, err = parseAnswerFlags([]string{"3"})
	assert.ErrorContains(t, err, "want <id>=<index>")

	_, err = parseAnswerFlags([]string{"3=x"})
	assert.Error(t, err)
}

func TestReadAnswersFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "a.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("answers:\n  0: 2\n  5: 1\n"), 0o600))
	got, err := readAnswersFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"0": 2, "5": 1}, got)

	jsonPath := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"answers": {"9": 0}}`), 0o600))
	got, err = readAnswersFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"9": 0}, got)

	_, err = readAnswersFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestCollectAnswers(t *testing.T) {
	cat := catalog.MustBuiltin()

	answers, err := collectAnswers(cat, map[string]int{"0": 2, "2": 1})
	require.NoError(t, err)
	assert.Equal(t, scoring.Answers{0: 2, 2: 1}, answers)

	answers, err = collectAnswers(cat, map[string]int{"42": 0, "1": 1})
	require.NoError(t, err)
	assert.Equal(t, scoring.Answers{1: 1}, answers)
	assert.Equal(t, scoring.Classify(cat, scoring.Answers{42: 0, 1: 1}), scoring.Classify(cat, answers))

	_, err = collectAnswers(cat, map[string]int{"0": 3})
	assert.ErrorIs(t, err, wizard.ErrInvalidOption)

	_, err = collectAnswers(cat, map[string]int{"abc": 0})
	assert.ErrorContains(t, err, "invalid question id")
}

func TestPrintScoreReport(t *testing.T) {
	cat := catalog.MustBuiltin()
	all := map[string]int{}
	for _, q := range cat.Questions() {
		all[strconv.Itoa(q.ID)] = 2
	}
	answers, err := collectAnswers(cat, all)
	require.NoError(t, err)

	rep := newScoreReport(cat, scoring.Evaluate(cat, answers))
	require.NotNil(t, rep.Profile)

	var buf bytes.Buffer
	printScoreReport(&buf, rep)
	out := buf.String()
	assert.Contains(t, out, "100.0/100")
	assert.Contains(t, out, "Portfólio Arrojado - Topo Capital")
	assert.Contains(t, out, "Alocação do Portfólio")
	assert.Contains(t, out, catalog.AssetEquityWorld)
}

func TestPrintScoreReport_UnknownProfile(t *testing.T) {
	var buf bytes.Buffer
	printScoreReport(&buf, scoreReport{Result: scoring.Result{Profile: "outro"}})
	assert.Contains(t, buf.String(), "Perfil não encontrado")
}

func TestPrintLLMEvent(t *testing.T) {
	var buf bytes.Buffer
	printLLMEvent(&buf, &store.LLMRequestEventRecord{
		ID:        7,
		Timestamp: time.Now(),
		LLMRequestEventData: store.LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "glossary",
			ErrorMessage: "rate limited", RequestBody: "[user]\nTermo: CDI",
		},
	})
	out := buf.String()
	assert.Contains(t, out, "glossary")
	assert.Contains(t, out, "rate limited")
	assert.Contains(t, out, "Termo: CDI")
	assert.Contains(t, out, "(não registrado)")
}

func TestPrintCost(t *testing.T) {
	var buf bytes.Buffer
	printCost(&buf, []store.LLMUsage{{Model: "unknown-model", Calls: 1, InputTokens: 10, OutputTokens: 5}})
	assert.Contains(t, buf.String(), "TOTAL (parcial)")
	assert.Contains(t, buf.String(), "unknown-model")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "Portf", truncate("Portfólio", 5))
	assert.Equal(t, "Portfó", truncate("Portfólio", 6))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.0012))
	assert.Equal(t, "$1.50", formatCost(1.5))
}

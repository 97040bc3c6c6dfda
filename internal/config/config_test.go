package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/topocapital/suitability/internal/llm"
)

// isolate points the config lookup at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.DB.Path)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.LLM.Provider)
	assert.Equal(t, llm.DefaultConfig().Retry, cfg.LLM.Retry)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "claude-haiku", cfg.LLM.Anthropic.Model)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.OpenRouter.BaseURL)
}

func TestLoadFromDefaultDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "suitability"), 0o755))
	yaml := `
log:
  level: debug
  format: console
llm:
  provider: gemini
  gemini:
    api_key: g-key
    model: gemini-pro
  timeout: 5s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suitability", "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "g-key", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, "gemini-pro", cfg.LLM.Gemini.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	// untouched keys keep their defaults
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAI.Model)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db:\n  path: /tmp/x.db\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DB.Path)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SUITABILITY_LOG_LEVEL", "warn")
	t.Setenv("SUITABILITY_LLM_PROVIDER", "anthropic")
	t.Setenv("SUITABILITY_LLM_ANTHROPIC_API_KEY", "sk-env")
	t.Setenv("SUITABILITY_CATALOG_PATH", "/etc/catalog.yaml")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, llm.ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "sk-env", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, "/etc/catalog.yaml", cfg.Catalog.Path)
}

func TestLoadFlagsWin(t *testing.T) {
	isolate(t)
	t.Setenv("SUITABILITY_DB_PATH", "/from/env.db")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("catalog", "", "")
	require.NoError(t, flags.Parse([]string{"--db", "/from/flag.db"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.db", cfg.DB.Path)
	assert.Empty(t, cfg.Catalog.Path)
}

func TestInitLogger(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "logs", "app.log")

	flush, err := InitLogger(LogConfig{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)
	zap.L().Info("hello", zap.String("k", "v"))
	flush()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestInitLoggerDefaultPath(t *testing.T) {
	dir := isolate(t)
	flush, err := InitLogger(LogConfig{Level: "info"})
	require.NoError(t, err)
	flush()

	_, err = os.Stat(filepath.Join(dir, "suitability", "suitability.log"))
	assert.NoError(t, err)
}

func TestInitLoggerBadLevel(t *testing.T) {
	isolate(t)
	_, err := InitLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
}

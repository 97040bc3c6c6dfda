package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportParse_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, MustBuiltin()))

	c, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, MustBuiltin().Questions(), c.Questions())
	assert.Equal(t, MustBuiltin().Profiles(), c.Profiles())
}

func TestLoad_File(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, MustBuiltin()))

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	c, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, MustBuiltin().Questions(), c.Questions())
	assert.NotSame(t, MustBuiltin(), c)
}

func TestParse_SchemaRejectsWrongOptionCount(t *testing.T) {
	doc := `
questions:
  - id: 1
    weight: 1
    section: S
    text: Q?
    options: [a, b]
profiles: []
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog schema")
}

func TestParse_SchemaRejectsUnknownProfileKey(t *testing.T) {
	doc := `
questions:
  - {id: 1, weight: 1, section: S, text: "Q?", options: [a, b, c]}
profiles:
  - key: agressivo
    name: X
    allocation: []
    metrics: {retorno: "", volatilidade: "", sharpe: "", cdi: ""}
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog schema")
	assert.NotContains(t, err.Error(), "decode catalog")
}

func TestParse_StructuralValidationAfterSchema(t *testing.T) {
	// Schema-valid but duplicate IDs and missing profiles.
	doc := `
questions:
  - {id: 1, weight: 1, section: S, text: "Q?", options: [a, b, c]}
  - {id: 1, weight: 2, section: S, text: "Q2?", options: [a, b, c]}
profiles: []
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate question ID")
	assert.Contains(t, err.Error(), `missing profile "conservador"`)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("questions: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

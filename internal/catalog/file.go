package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog document.
type File struct {
	Questions []Question `yaml:"questions" json:"questions"`
	Profiles  []Profile  `yaml:"profiles" json:"profiles"`
}

const fileSchemaURL = "schema://suitability-catalog.json"

var fileSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"questions", "profiles"},
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "weight", "section", "text", "options"},
				"properties": map[string]any{
					"id":      map[string]any{"type": "integer", "minimum": 0},
					"weight":  map[string]any{"type": "number", "exclusiveMinimum": 0},
					"section": map[string]any{"type": "string", "minLength": 1},
					"text":    map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": OptionCount,
						"maxItems": OptionCount,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
				},
			},
		},
		"profiles": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"key", "name", "allocation", "metrics"},
				"properties": map[string]any{
					"key":         map[string]any{"type": "string", "enum": []any{"conservador", "moderado", "arrojado"}},
					"name":        map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"allocation": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"asset", "percent"},
							"properties": map[string]any{
								"asset":   map[string]any{"type": "string", "minLength": 1},
								"percent": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
							},
						},
					},
					"metrics": map[string]any{
						"type":     "object",
						"required": []any{"retorno", "volatilidade", "sharpe", "cdi"},
						"properties": map[string]any{
							"retorno":      map[string]any{"type": "string"},
							"volatilidade": map[string]any{"type": "string"},
							"sharpe":       map[string]any{"type": "string"},
							"cdi":          map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
}

var (
	fileSchemaOnce sync.Once
	fileSchema     *jsonschema.Schema
	fileSchemaErr  error
)

func compiledFileSchema() (*jsonschema.Schema, error) {
	fileSchemaOnce.Do(func() {
		parsed, err := roundTripJSON(fileSchemaDef)
		if err != nil {
			fileSchemaErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(fileSchemaURL, parsed); err != nil {
			fileSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		fileSchema, fileSchemaErr = c.Compile(fileSchemaURL)
	})
	return fileSchema, fileSchemaErr
}

// roundTripJSON converts v into the plain JSON value shape the schema
// validator expects (maps, slices, float64, string, bool, nil).
func roundTripJSON(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Parse decodes a YAML (or JSON) catalog document, checks it against the
// catalog schema and builds a validated Catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	generic, err := roundTripJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("normalize catalog: %w", err)
	}

	schema, err := compiledFileSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(generic); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Questions, f.Profiles)
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault loads the catalog at path, or returns the built-in catalog
// when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Builtin()
	}
	return Load(path)
}

// ToFile returns the catalog as an on-disk document.
func (c *Catalog) ToFile() File {
	return File{Questions: c.Questions(), Profiles: c.Profiles()}
}

// Export writes the catalog as YAML.
func Export(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.ToFile()); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

package patterns

import (
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// fileSchema validates the shape of a pattern file before any regex
// compilation happens. Regex validity is checked separately by Compile,
// which skips bad entries instead of failing.
const fileSchema = `{
	"type": "object",
	"required": ["patterns"],
	"properties": {
		"patterns": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["priority", "pattern"],
				"properties": {
					"priority": {"type": "integer", "minimum": 1},
					"name": {"type": "string"},
					"example": {"type": "string"},
					"pattern": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

// File is the on-disk pattern file shape.
type File struct {
	Patterns []Raw `yaml:"patterns" json:"patterns"`
}

// LoadFile reads a YAML pattern file and validates it against the
// embedded schema. A malformed file is a hard error; individual invalid
// regexes inside a well-formed file are not.
func LoadFile(path string) ([]Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file: %w", err)
	}

	if err := validateFile(doc); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode pattern file: %w", err)
	}
	return f.Patterns, nil
}

// validateFile checks the decoded document against fileSchema.
func validateFile(doc any) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("patterns.json", strings.NewReader(fileSchema)); err != nil {
		return fmt.Errorf("failed to load pattern schema: %w", err)
	}
	schema, err := compiler.Compile("patterns.json")
	if err != nil {
		return fmt.Errorf("failed to compile pattern schema: %w", err)
	}
	if err := schema.Validate(normalize(doc)); err != nil {
		return fmt.Errorf("pattern file does not match schema: %w", err)
	}
	return nil
}

// normalize converts yaml.v3 map[string]any trees into the
// map[string]any/[]any/json-scalar shapes the schema validator expects.
func normalize(v any) any {
	switch n := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, val := range n {
			out[k] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, val := range n {
			out[i] = normalize(val)
		}
		return out
	case int:
		return float64(n)
	default:
		return v
	}
}

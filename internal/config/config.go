// Package config loads and validates the merge configuration document.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/alnah/go-pdfstitch/internal/hints"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrMissingFiles   = errors.New(`config must be an object with a "files" array`)
	ErrConfigTooLarge = errors.New("config exceeds maximum size")
)

// MaxConfigSize limits config input to prevent memory exhaustion.
const MaxConfigSize = 1 << 20

// schemaJSON constrains only the top-level document shape. Individual
// entries stay untyped so that unknown entry forms degrade to skipped
// entries instead of load failures.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["files"],
  "properties": {
    "files": {"type": "array"}
  }
}`

var schema = jsonschema.MustCompileString("config.schema.json", schemaJSON)

// EntryKind discriminates the accepted entry forms.
type EntryKind int

const (
	EntryInvalid EntryKind = iota // neither string nor object; skipped
	EntryPath                     // plain path string
	EntryGroup                    // object with optional files and options
)

// Entry is one element of the top-level files array.
type Entry struct {
	Kind    EntryKind
	Path    string   // set when Kind == EntryPath
	Files   []string // set when Kind == EntryGroup
	Options []string // set when Kind == EntryGroup
}

// Config is the root configuration document.
type Config struct {
	Files []Entry `yaml:"files" json:"files"`
}

// UnmarshalYAML accepts either a scalar path or an entry object. Any other
// node shape yields an EntryInvalid entry for the resolver to skip.
func (e *Entry) UnmarshalYAML(data []byte) error {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}

	switch v := node.(type) {
	case string:
		e.Kind = EntryPath
		e.Path = v
	case map[string]any:
		e.Kind = EntryGroup
		e.Files = stringList(v["files"])
		e.Options = stringList(v["options"])
	default:
		e.Kind = EntryInvalid
	}
	return nil
}

// stringList keeps the string elements of a decoded array. Non-string
// elements and non-array values are dropped; the schema is two-level, so
// inner lists hold path strings only.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Load reads, validates, and decodes the configuration at path.
// The document is JSON; YAML is accepted as a superset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s%s", ErrConfigNotFound, path, hints.ForConfigNotFound())
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	if err := validateShape(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// validateShape checks the top-level document shape against the JSON schema.
// YAML input is re-decoded generically to feed the validator.
func validateShape(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v%s", ErrMissingFiles, err, hints.ForMissingFilesKey())
	}
	return nil
}

package skillgraph

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SchemaVersion is the seed document version this build understands.
// Documents with a different major version are rejected.
const SchemaVersion = "v1.0.0"

// seedSchema is the JSON Schema for the skill graph seed document.
var seedSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "string",
			"pattern": `^v\d+\.\d+\.\d+$`,
		},
		"skills": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":         map[string]any{"type": "string", "minLength": 1},
					"name":       map[string]any{"type": "string", "minLength": 1},
					"category":   map[string]any{"type": "string", "minLength": 1},
					"complexity": map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
					"prereqs": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":       map[string]any{"type": "string", "minLength": 1},
								"strength": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
							},
							"required":             []any{"id"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "name", "category", "complexity"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "skills"},
	"additionalProperties": false,
}

var (
	compiledSeedSchema     *jsonschema.Schema
	compileSeedSchemaOnce  sync.Once
	compileSeedSchemaError error
)

func getSeedSchema() (*jsonschema.Schema, error) {
	compileSeedSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://skill-graph.json", seedSchema); err != nil {
			compileSeedSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSeedSchema, compileSeedSchemaError = c.Compile("schema://skill-graph.json")
	})
	return compiledSeedSchema, compileSeedSchemaError
}

type seedDoc struct {
	Version string      `json:"version"`
	Skills  []seedSkill `json:"skills"`
}

type seedSkill struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Category   string       `json:"category"`
	Complexity int          `json:"complexity"`
	Prereqs    []seedPrereq `json:"prereqs,omitempty"`
}

type seedPrereq struct {
	ID       string   `json:"id"`
	Strength *float64 `json:"strength,omitempty"`
}

// Load reads a skill graph seed document from r, validates it against
// the embedded JSON Schema, checks version compatibility, and builds
// the Graph.
func Load(r io.Reader) (*Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read seed document: %w", err)
	}

	// The jsonschema library validates a parsed JSON value, not bytes.
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse seed document: %w", err)
	}

	schema, err := getSeedSchema()
	if err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("seed document invalid: %w", err)
	}

	var doc seedDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode seed document: %w", err)
	}

	if !semver.IsValid(doc.Version) {
		return nil, fmt.Errorf("seed document version %q is not valid semver", doc.Version)
	}
	if semver.Major(doc.Version) != semver.Major(SchemaVersion) {
		return nil, fmt.Errorf("seed document version %s is incompatible with supported %s",
			doc.Version, SchemaVersion)
	}

	skills := make([]Skill, 0, len(doc.Skills))
	var deps []Dependency
	for _, s := range doc.Skills {
		skills = append(skills, Skill{
			ID:         s.ID,
			Name:       s.Name,
			Category:   s.Category,
			Complexity: s.Complexity,
		})
		for _, p := range s.Prereqs {
			// Default strength mirrors the seeding convention: a sole
			// prerequisite is critical, shared prerequisites less so.
			strength := 1.0
			if len(s.Prereqs) > 1 {
				strength = 0.8
			}
			if p.Strength != nil {
				strength = *p.Strength
			}
			deps = append(deps, Dependency{
				SkillID:    s.ID,
				RequiresID: p.ID,
				Strength:   strength,
			})
		}
	}

	return New(skills, deps)
}

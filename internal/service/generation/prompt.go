package generation

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/llm"
)

//go:embed prompt.yaml
var defaultPrompt []byte

// Prompt is the fixed instruction sent with every generation request.
type Prompt struct {
	System         string
	ResponseFormat *llm.ResponseFormat
}

type promptFile struct {
	SystemPrompt   string `yaml:"system_prompt"`
	ResponseSchema *struct {
		Name   string         `yaml:"name"`
		Strict bool           `yaml:"strict"`
		Schema map[string]any `yaml:"schema"`
	} `yaml:"response_schema"`
}

// LoadPrompt reads a YAML prompt file. An empty path selects the built-in prompt.
func LoadPrompt(path string) (*Prompt, error) {
	if path == "" {
		return ParsePrompt(defaultPrompt)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt file: %w", err)
	}
	p, err := ParsePrompt(raw)
	if err != nil {
		return nil, fmt.Errorf("prompt file %s: %w", path, err)
	}
	return p, nil
}

// ParsePrompt decodes a YAML prompt document.
func ParsePrompt(raw []byte) (*Prompt, error) {
	var f promptFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse prompt: %w", err)
	}

	system := strings.TrimSpace(f.SystemPrompt)
	if system == "" {
		return nil, fmt.Errorf("parse prompt: system_prompt is empty")
	}

	p := &Prompt{System: system}
	if f.ResponseSchema != nil && len(f.ResponseSchema.Schema) > 0 {
		name := f.ResponseSchema.Name
		if name == "" {
			name = "flashcards"
		}
		p.ResponseFormat = &llm.ResponseFormat{
			Type: "json_schema",
			JSONSchema: &llm.JSONSchema{
				Name:   name,
				Strict: f.ResponseSchema.Strict,
				Schema: f.ResponseSchema.Schema,
			},
		}
	}
	return p, nil
}

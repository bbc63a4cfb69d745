package llm

import "github.com/heartmarshall/flashcards-backend/internal/config"

// Params are the tunables sent with every completion request.
// Nil pointer fields are omitted from the request body.
type Params struct {
	Model            string          `json:"model,omitempty"`
	Temperature      *float64        `json:"temperature,omitempty"`
	TopP             *float64        `json:"top_p,omitempty"`
	MaxTokens        *int            `json:"max_tokens,omitempty"`
	FrequencyPenalty *float64        `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64        `json:"presence_penalty,omitempty"`
	ResponseFormat   *ResponseFormat `json:"response_format,omitempty"`
}

// ResponseFormat asks the model for schema-constrained JSON output.
type ResponseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *JSONSchema `json:"json_schema,omitempty"`
}

// JSONSchema is a named JSON schema for structured output.
type JSONSchema struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

// DefaultParams builds the default parameter set from configuration.
func DefaultParams(cfg config.LLMConfig) Params {
	return Params{
		Model:            cfg.Model,
		Temperature:      ptr(cfg.Temperature),
		TopP:             ptr(cfg.TopP),
		MaxTokens:        ptr(cfg.MaxTokens),
		FrequencyPenalty: ptr(cfg.FrequencyPenalty),
		PresencePenalty:  ptr(cfg.PresencePenalty),
	}
}

// MergeParams returns the effective parameters: every field set in overrides
// wins over the corresponding default. Neither argument is modified.
func MergeParams(defaults Params, overrides *Params) Params {
	out := defaults
	if overrides == nil {
		return out
	}
	if overrides.Model != "" {
		out.Model = overrides.Model
	}
	if overrides.Temperature != nil {
		out.Temperature = overrides.Temperature
	}
	if overrides.TopP != nil {
		out.TopP = overrides.TopP
	}
	if overrides.MaxTokens != nil {
		out.MaxTokens = overrides.MaxTokens
	}
	if overrides.FrequencyPenalty != nil {
		out.FrequencyPenalty = overrides.FrequencyPenalty
	}
	if overrides.PresencePenalty != nil {
		out.PresencePenalty = overrides.PresencePenalty
	}
	if overrides.ResponseFormat != nil {
		out.ResponseFormat = overrides.ResponseFormat
	}
	return out
}

func ptr[T any](v T) *T { return &v }

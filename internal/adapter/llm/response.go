package llm

import (
	"encoding/json"
	"fmt"
)

const chatCompletionObject = "chat.completion"

// ChatCompletion is a validated chat-completion response.
type ChatCompletion struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is one completion alternative.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Message is a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage holds token accounting of a completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Content returns the message content of the first choice.
func (c *ChatCompletion) Content() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Message.Content
}

// DecodeChatCompletion parses raw and checks its shape, stopping at the first
// missing or mismatched field. Any mismatch is a *ValidationError.
func DecodeChatCompletion(raw []byte) (*ChatCompletion, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, newValidationError("response is not a JSON object: %v", err)
	}

	if _, err := stringField(fields, "id"); err != nil {
		return nil, err
	}
	object, err := stringField(fields, "object")
	if err != nil {
		return nil, err
	}
	if object != chatCompletionObject {
		return nil, newValidationError("field %q: want %q, got %q", "object", chatCompletionObject, object)
	}
	if _, err := numberField(fields, "created", "created"); err != nil {
		return nil, err
	}
	if _, err := stringField(fields, "model"); err != nil {
		return nil, err
	}

	choices, ok := fields["choices"].([]any)
	if !ok {
		return nil, newValidationError("field %q: want array", "choices")
	}
	if len(choices) == 0 {
		return nil, newValidationError("field %q: must not be empty", "choices")
	}

	usage, ok := fields["usage"].(map[string]any)
	if !ok {
		return nil, newValidationError("field %q: want object", "usage")
	}
	for _, name := range []string{"prompt_tokens", "completion_tokens", "total_tokens"} {
		if _, err := numberField(usage, name, "usage."+name); err != nil {
			return nil, err
		}
	}

	var out ChatCompletion
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, newValidationError("decode response: %v", err)
	}
	return &out, nil
}

func stringField(fields map[string]any, name string) (string, error) {
	v, present := fields[name]
	if !present {
		return "", newValidationError("field %q: missing", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", newValidationError("field %q: want string, got %s", name, jsonKind(v))
	}
	return s, nil
}

func numberField(fields map[string]any, key, label string) (float64, error) {
	v, present := fields[key]
	if !present {
		return 0, newValidationError("field %q: missing", label)
	}
	n, ok := v.(float64)
	if !ok {
		return 0, newValidationError("field %q: want number, got %s", label, jsonKind(v))
	}
	return n, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

package document

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

// MaxNameLength bounds document names, in runes.
const MaxNameLength = 255

// CreateDocumentInput holds the parameters for creating a document.
type CreateDocumentInput struct {
	Name    string     `json:"name"`
	Content string     `json:"content"`
	TopicID *uuid.UUID `json:"topic_id"`
	// SkipGeneration stores the document without generating flashcards.
	SkipGeneration bool `json:"skip_generation"`
}

// Validate checks all fields and collects all errors.
func (i CreateDocumentInput) Validate(limits generation.TextLimits) error {
	name := strings.TrimSpace(i.Name)
	content := strings.TrimSpace(i.Content)
	return domain.FromRuleErrors(validation.Errors{
		"name":    validation.Validate(name, validation.Required, validation.RuneLength(1, MaxNameLength)),
		"content": validation.Validate(content, validation.Required, validation.RuneLength(limits.Min, limits.Max)),
	}.Filter())
}

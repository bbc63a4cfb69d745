package generation

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// GenerateInput holds the parameters for generating flashcards.
// Text or DocumentID must be set; when both are set Text is used and the
// flashcards are attached to the document.
type GenerateInput struct {
	Text       string     `json:"text"`
	DocumentID *uuid.UUID `json:"document_id"`
	TopicID    *uuid.UUID `json:"topic_id"`
	// ForceRegenerate replaces the document's existing AI flashcards.
	ForceRegenerate bool `json:"force_regenerate"`
}

// Validate checks the input against the text limits and collects all errors.
func (i GenerateInput) Validate(limits TextLimits) error {
	return validateSource(i.Text, i.DocumentID, limits)
}

// RegenerateInput holds the parameters for regenerating flashcards.
type RegenerateInput struct {
	Text       string     `json:"text"`
	DocumentID *uuid.UUID `json:"document_id"`
	TopicID    *uuid.UUID `json:"topic_id"`
}

// Validate checks the input against the text limits and collects all errors.
func (i RegenerateInput) Validate(limits TextLimits) error {
	return validateSource(i.Text, i.DocumentID, limits)
}

func validateSource(text string, documentID *uuid.UUID, limits TextLimits) error {
	trimmed := strings.TrimSpace(text)
	hasDocument := documentID != nil && *documentID != uuid.Nil

	if trimmed == "" && !hasDocument {
		return domain.NewValidationError("text", "text or document_id is required")
	}

	err := validation.Errors{
		"text": validation.Validate(trimmed,
			validation.When(trimmed != "", validation.RuneLength(limits.Min, limits.Max)),
		),
		"document_id": validation.Validate(documentID,
			validation.When(documentID != nil, validation.By(notNilUUID)),
		),
	}.Filter()

	return domain.FromRuleErrors(err)
}

func notNilUUID(value any) error {
	if id, ok := value.(*uuid.UUID); ok && id != nil && *id == uuid.Nil {
		return validation.NewError("validation_nil_uuid", "must not be the nil id")
	}
	return nil
}

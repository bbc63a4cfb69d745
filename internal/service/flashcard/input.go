package flashcard

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

var requiredID = validation.By(func(value any) error {
	if id, ok := value.(uuid.UUID); ok && id == uuid.Nil {
		return validation.NewError("validation_required", "is required")
	}
	return nil
})

// ApproveBulkInput holds the flashcards to approve in one batch.
type ApproveBulkInput struct {
	IDs []uuid.UUID `json:"flashcard_ids"`
}

// Validate checks the batch size against maxIDs and rejects nil ids.
func (i ApproveBulkInput) Validate(maxIDs int) error {
	return domain.FromRuleErrors(validation.ValidateStruct(&i,
		validation.Field(&i.IDs,
			validation.Required,
			validation.Length(1, maxIDs),
			validation.Each(requiredID),
		),
	))
}

// UpdateFlashcardInput holds a user edit. Nil sides are left as they are.
type UpdateFlashcardInput struct {
	ID            uuid.UUID `json:"id"`
	FrontModified *string   `json:"front_modified"`
	BackModified  *string   `json:"back_modified"`
}

// Validate checks all fields and collects all errors.
func (i UpdateFlashcardInput) Validate() error {
	err := validation.ValidateStruct(&i,
		validation.Field(&i.ID, requiredID),
		validation.Field(&i.FrontModified, validation.NilOrNotEmpty, validation.RuneLength(0, domain.MaxFrontLength)),
		validation.Field(&i.BackModified, validation.NilOrNotEmpty, validation.RuneLength(0, domain.MaxBackLength)),
	)
	if err != nil {
		return domain.FromRuleErrors(err)
	}
	if i.FrontModified == nil && i.BackModified == nil {
		return domain.NewValidationError("flashcard", "front_modified or back_modified is required")
	}
	return nil
}

func (i UpdateFlashcardInput) normalized() UpdateFlashcardInput {
	i.FrontModified = trimPtr(i.FrontModified)
	i.BackModified = trimPtr(i.BackModified)
	return i
}

// CreateManualInput holds a user-authored flashcard.
type CreateManualInput struct {
	FrontOriginal string     `json:"front_original"`
	BackOriginal  string     `json:"back_original"`
	DocumentID    *uuid.UUID `json:"document_id"`
	TopicID       *uuid.UUID `json:"topic_id"`
}

// Validate checks all fields and collects all errors.
func (i CreateManualInput) Validate() error {
	front := strings.TrimSpace(i.FrontOriginal)
	back := strings.TrimSpace(i.BackOriginal)
	return domain.FromRuleErrors(validation.Errors{
		"front_original": validation.Validate(front, validation.Required, validation.RuneLength(1, domain.MaxFrontLength)),
		"back_original":  validation.Validate(back, validation.Required, validation.RuneLength(1, domain.MaxBackLength)),
	}.Filter())
}

// ListInput selects the flashcards of one document.
type ListInput struct {
	DocumentID      uuid.UUID               `json:"document_id"`
	Source          *domain.FlashcardSource `json:"source"`
	IsApproved      *bool                   `json:"is_approved"`
	IncludeDisabled bool                    `json:"include_disabled"`
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	return domain.FromRuleErrors(validation.ValidateStruct(&i,
		validation.Field(&i.DocumentID, requiredID),
		validation.Field(&i.Source, validation.By(func(value any) error {
			if src, ok := value.(*domain.FlashcardSource); ok && src != nil && !src.IsValid() {
				return validation.NewError("validation_source", "must be ai or manual")
			}
			return nil
		})),
	))
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

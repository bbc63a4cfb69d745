package document

import (
	"errors"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

// Warning kinds reported when generation fails after the document is saved.
const (
	WarningGeneration = "generation_failed"
	WarningPersist    = "persist_failed"
	WarningOther      = "unexpected"
)

// GenerationWarning describes why flashcards were not generated for a
// document that was nevertheless created.
type GenerationWarning struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// CreateDocumentResult holds a stored document and the outcome of the
// flashcard generation that followed it. GenerationWarning is set instead of
// an error when generation failed.
type CreateDocumentResult struct {
	Document          *domain.Document
	Flashcards        []domain.FlashcardProposal
	GenerationWarning *GenerationWarning
}

func newGenerationWarning(err error) *GenerationWarning {
	kind := WarningOther
	switch {
	case errors.Is(err, generation.ErrGeneration):
		kind = WarningGeneration
	case errors.Is(err, generation.ErrPersist):
		kind = WarningPersist
	}
	return &GenerationWarning{Kind: kind, Message: err.Error()}
}

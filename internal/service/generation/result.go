package generation

import "github.com/heartmarshall/flashcards-backend/internal/domain"

// GenerateResult holds the proposals produced by one generation run.
type GenerateResult struct {
	Flashcards []domain.FlashcardProposal `json:"flashcards"`
}

// RegenerateResult holds the fresh proposals and how many earlier AI
// flashcards of the document were deleted.
type RegenerateResult struct {
	Flashcards   []domain.FlashcardProposal `json:"flashcards"`
	DeletedCount int                        `json:"deleted_count"`
}

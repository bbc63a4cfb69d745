package flashcard

import "github.com/heartmarshall/flashcards-backend/internal/domain"

// ApproveResult holds the flashcards a batch approval changed.
type ApproveResult struct {
	ApprovedCount int
	Flashcards    []domain.Flashcard
}

// UpdateResult holds an edited flashcard and the versioning decision for it.
type UpdateResult struct {
	Flashcard  *domain.Flashcard
	NewVersion bool
}

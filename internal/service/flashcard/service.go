// Package flashcard implements the review side of flashcards: approval,
// user edits, manual flashcards and listings.
package flashcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

type flashcardRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Flashcard, error)
	ApproveMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error)
	ApproveByDocument(ctx context.Context, userID, documentID uuid.UUID) ([]domain.Flashcard, error)
	Update(ctx context.Context, userID, id uuid.UUID, upd domain.FlashcardUpdate) (*domain.Flashcard, error)
	Create(ctx context.Context, userID uuid.UUID, in domain.ManualFlashcard) (*domain.Flashcard, error)
	ListByDocument(ctx context.Context, userID, documentID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, error)
}

type documentRepo interface {
	Exists(ctx context.Context, userID, documentID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultMaxBulkApprove caps ApproveBulk when no limit is configured.
const DefaultMaxBulkApprove = 100

// Service provides flashcard review operations.
type Service struct {
	flashcards     flashcardRepo
	documents      documentRepo
	tx             txManager
	maxBulkApprove int
	log            *slog.Logger
}

// NewService creates a new flashcard service.
func NewService(
	log *slog.Logger,
	flashcards flashcardRepo,
	documents documentRepo,
	tx txManager,
	maxBulkApprove int,
) *Service {
	if maxBulkApprove <= 0 {
		maxBulkApprove = DefaultMaxBulkApprove
	}
	return &Service{
		flashcards:     flashcards,
		documents:      documents,
		tx:             tx,
		maxBulkApprove: maxBulkApprove,
		log:            log.With("service", "flashcard"),
	}
}

func (s *Service) ensureDocument(ctx context.Context, userID, documentID uuid.UUID) error {
	exists, err := s.documents.Exists(ctx, userID, documentID)
	if err != nil {
		return fmt.Errorf("check document: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, documentID)
	}
	return nil
}

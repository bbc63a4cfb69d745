package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// CreateManual stores a user-authored flashcard. Manual flashcards are
// approved on creation and survive AI regeneration of their document.
func (s *Service) CreateManual(ctx context.Context, input CreateManualInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.DocumentID != nil {
		if err := s.ensureDocument(ctx, userID, *input.DocumentID); err != nil {
			return nil, err
		}
	}

	card, err := s.flashcards.Create(ctx, userID, domain.ManualFlashcard{
		FrontOriginal: strings.TrimSpace(input.FrontOriginal),
		BackOriginal:  strings.TrimSpace(input.BackOriginal),
		DocumentID:    input.DocumentID,
		TopicID:       input.TopicID,
	})
	if err != nil {
		return nil, fmt.Errorf("create flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "manual flashcard created",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", card.ID.String()),
	)
	return card, nil
}

// ListByDocument returns the flashcards of a document.
func (s *Service) ListByDocument(ctx context.Context, input ListInput) ([]domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureDocument(ctx, userID, input.DocumentID); err != nil {
		return nil, err
	}

	cards, err := s.flashcards.ListByDocument(ctx, userID, input.DocumentID, domain.FlashcardFilter{
		Source:          input.Source,
		IsApproved:      input.IsApproved,
		IncludeDisabled: input.IncludeDisabled,
	})
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	return cards, nil
}

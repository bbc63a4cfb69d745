package flashcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// UpdateFlashcard stores a user edit and recomputes the modification
// percentage against the original content. The result reports whether the
// edit is large enough to count as a new version.
func (s *Service) UpdateFlashcard(ctx context.Context, input UpdateFlashcardInput) (*UpdateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated    *domain.Flashcard
		percentage int
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		card, err := s.flashcards.GetByID(ctx, userID, input.ID)
		if err != nil {
			return fmt.Errorf("get flashcard: %w", err)
		}
		if card.IsDisabled {
			return &domain.InvalidStateError{FlashcardID: card.ID.String(), Condition: ConditionDisabled}
		}

		edit := domain.FlashcardEdit{FrontModified: card.FrontModified, BackModified: card.BackModified}
		if input.FrontModified != nil {
			edit.FrontModified = input.FrontModified
		}
		if input.BackModified != nil {
			edit.BackModified = input.BackModified
		}
		percentage = domain.CalculateModificationPercentage(card.Original(), edit)

		updated, err = s.flashcards.Update(ctx, userID, input.ID, domain.FlashcardUpdate{
			FrontModified:          input.FrontModified,
			BackModified:           input.BackModified,
			ModificationPercentage: &percentage,
		})
		if err != nil {
			return fmt.Errorf("update flashcard: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	newVersion := domain.ShouldCreateNewVersion(percentage)
	s.log.InfoContext(ctx, "flashcard edited",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", input.ID.String()),
		slog.Int("modification_percentage", percentage),
		slog.Bool("new_version", newVersion),
	)
	return &UpdateResult{Flashcard: updated, NewVersion: newVersion}, nil
}

// Disable soft-deletes a flashcard. Disabled flashcards drop out of listings
// and can no longer be approved.
func (s *Service) Disable(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "is required")
	}

	disabled := true
	card, err := s.flashcards.Update(ctx, userID, id, domain.FlashcardUpdate{IsDisabled: &disabled})
	if err != nil {
		return nil, fmt.Errorf("disable flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard disabled",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", id.String()),
	)
	return card, nil
}

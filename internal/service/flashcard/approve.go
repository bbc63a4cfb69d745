package flashcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// Conditions reported by *domain.InvalidStateError.
const (
	ConditionNotAI           = "source must be ai"
	ConditionAlreadyApproved = "flashcard is already approved"
	ConditionDisabled        = "flashcard is disabled"
	ConditionNoLongerPending = "flashcard is no longer pending"
)

// ApproveOne approves a single pending AI flashcard. Approving a flashcard
// that is manual, already approved or disabled fails with
// *domain.InvalidStateError naming the first failed condition.
func (s *Service) ApproveOne(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "is required")
	}

	var approved *domain.Flashcard
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		card, err := s.flashcards.GetByID(ctx, userID, id)
		if err != nil {
			return fmt.Errorf("get flashcard: %w", err)
		}
		if err := checkApprovable(card); err != nil {
			return err
		}

		cards, err := s.flashcards.ApproveMany(ctx, userID, []uuid.UUID{id})
		if err != nil {
			return fmt.Errorf("approve flashcard: %w", err)
		}
		if len(cards) == 0 {
			return &domain.InvalidStateError{FlashcardID: id.String(), Condition: ConditionNoLongerPending}
		}
		approved = &cards[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "flashcard approved",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", id.String()),
	)
	return approved, nil
}

// checkApprovable tests the approval preconditions in a fixed order.
func checkApprovable(card *domain.Flashcard) error {
	var condition string
	switch {
	case card.Source != domain.FlashcardSourceAI:
		condition = ConditionNotAI
	case card.IsApproved:
		condition = ConditionAlreadyApproved
	case card.IsDisabled:
		condition = ConditionDisabled
	default:
		return nil
	}
	return &domain.InvalidStateError{FlashcardID: card.ID.String(), Condition: condition}
}

// ApproveBulk approves the pending AI flashcards among input.IDs in one
// statement. Ids that are unknown or not pending are skipped and not counted.
func (s *Service) ApproveBulk(ctx context.Context, input ApproveBulkInput) (*ApproveResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.maxBulkApprove); err != nil {
		return nil, err
	}

	cards, err := s.flashcards.ApproveMany(ctx, userID, dedupe(input.IDs))
	if err != nil {
		return nil, fmt.Errorf("approve flashcards: %w", err)
	}

	s.log.InfoContext(ctx, "flashcards approved",
		slog.String("user_id", userID.String()),
		slog.Int("requested", len(input.IDs)),
		slog.Int("approved", len(cards)),
	)
	return &ApproveResult{ApprovedCount: len(cards), Flashcards: cards}, nil
}

// ApproveByDocument approves every pending AI flashcard of a document.
// An unknown document fails with domain.ErrDocumentNotFound before any
// flashcard is touched.
func (s *Service) ApproveByDocument(ctx context.Context, documentID uuid.UUID) (*ApproveResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if documentID == uuid.Nil {
		return nil, domain.NewValidationError("document_id", "is required")
	}

	var cards []domain.Flashcard
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.ensureDocument(ctx, userID, documentID); err != nil {
			return err
		}

		var err error
		cards, err = s.flashcards.ApproveByDocument(ctx, userID, documentID)
		if err != nil {
			return fmt.Errorf("approve document flashcards: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "document flashcards approved",
		slog.String("user_id", userID.String()),
		slog.String("document_id", documentID.String()),
		slog.Int("approved", len(cards)),
	)
	return &ApproveResult{ApprovedCount: len(cards), Flashcards: cards}, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

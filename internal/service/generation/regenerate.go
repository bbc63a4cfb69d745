package generation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// regenerateTimeout bounds a shared regeneration once it no longer follows
// any single caller's context.
const regenerateTimeout = 5 * time.Minute

// RegenerateFlashcards replaces the AI flashcards of a document with a fresh
// batch. Deletion finishes before the model is called; manual flashcards are
// kept. Without a document it only generates, and DeletedCount is 0.
//
// Concurrent calls for the same user and document are serialised through one
// in-flight run. A caller whose text and topic match the running request
// shares its result; any other caller waits for it and then runs its own.
// A run continues after the caller that started it gives up.
// Deletion and insertion are separate statements: a failed generation leaves
// the document without AI flashcards until the next attempt.
func (s *Service) RegenerateFlashcards(ctx context.Context, input RegenerateInput) (*RegenerateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	if input.DocumentID == nil {
		proposals, err := s.generate(ctx, userID, strings.TrimSpace(input.Text), input.TopicID, nil)
		if err != nil {
			return nil, err
		}
		return &RegenerateResult{Flashcards: proposals}, nil
	}

	key := userID.String() + ":" + input.DocumentID.String()
	signature := requestSignature(input)

	for {
		ch := s.inflight.DoChan(key, func() (any, error) {
			runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), regenerateTimeout)
			defer cancel()
			res, err := s.regenerateDocument(runCtx, userID, input)
			return &regenerateRun{signature: signature, result: res, err: err}, nil
		})

		var run *regenerateRun
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case r := <-ch:
			run = r.Val.(*regenerateRun)
			if r.Shared && run.signature == signature {
				s.log.DebugContext(ctx, "regeneration shared with concurrent caller",
					slog.String("document_id", input.DocumentID.String()),
				)
			}
		}

		if run.signature != signature {
			// Another request held the document; run ours now that it is done.
			continue
		}
		if run.err != nil {
			return nil, run.err
		}
		return &RegenerateResult{
			Flashcards:   append([]domain.FlashcardProposal(nil), run.result.Flashcards...),
			DeletedCount: run.result.DeletedCount,
		}, nil
	}
}

type regenerateRun struct {
	signature string
	result    *RegenerateResult
	err       error
}

// requestSignature identifies the inputs that shape a regeneration's output.
func requestSignature(input RegenerateInput) string {
	topic := ""
	if input.TopicID != nil {
		topic = input.TopicID.String()
	}
	sum := sha256.Sum256([]byte(strings.TrimSpace(input.Text)))
	return topic + ":" + hex.EncodeToString(sum[:])
}

func (s *Service) regenerateDocument(ctx context.Context, userID uuid.UUID, input RegenerateInput) (*RegenerateResult, error) {
	documentID := *input.DocumentID

	if err := s.ensureDocument(ctx, userID, documentID); err != nil {
		return nil, err
	}

	deleted, err := s.flashcards.DeleteAIByDocument(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("delete ai flashcards: %w", err)
	}

	s.log.InfoContext(ctx, "ai flashcards deleted for regeneration",
		slog.String("user_id", userID.String()),
		slog.String("document_id", documentID.String()),
		slog.Int("deleted_count", deleted),
	)

	text, err := s.resolveText(ctx, userID, input.Text, input.DocumentID)
	if err != nil {
		return nil, err
	}

	proposals, err := s.generate(ctx, userID, text, input.TopicID, input.DocumentID)
	if err != nil {
		return nil, err
	}

	return &RegenerateResult{Flashcards: proposals, DeletedCount: deleted}, nil
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

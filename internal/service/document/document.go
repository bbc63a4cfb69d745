package document

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// CreateDocument stores a document and then generates flashcards from it.
// The document stays stored when generation fails; the failure is logged and
// returned as a GenerationWarning so the caller can retry with regeneration.
func (s *Service) CreateDocument(ctx context.Context, input CreateDocumentInput) (*CreateDocumentResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	doc, err := s.documents.Create(ctx, userID, strings.TrimSpace(input.Name), strings.TrimSpace(input.Content), input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.log.InfoContext(ctx, "document created",
		slog.String("user_id", userID.String()),
		slog.String("document_id", doc.ID.String()),
	)

	result := &CreateDocumentResult{Document: doc}
	if input.SkipGeneration {
		return result, nil
	}

	gen, err := s.generator.GenerateFlashcards(ctx, generation.GenerateInput{
		DocumentID: &doc.ID,
		TopicID:    doc.TopicID,
	})
	if err != nil {
		result.GenerationWarning = newGenerationWarning(err)
		s.log.WarnContext(ctx, "flashcard generation failed after document creation",
			slog.String("user_id", userID.String()),
			slog.String("document_id", doc.ID.String()),
			slog.String("kind", result.GenerationWarning.Kind),
			slog.String("error", err.Error()),
		)
		return result, nil
	}

	result.Flashcards = gen.Flashcards
	return result, nil
}

// GetDocument returns a document owned by the current user.
func (s *Service) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "is required")
	}

	doc, err := s.documents.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// DeleteDocument removes a document together with all its flashcards.
func (s *Service) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "is required")
	}

	if err := s.documents.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	s.log.InfoContext(ctx, "document deleted",
		slog.String("user_id", userID.String()),
		slog.String("document_id", id.String()),
	)
	return nil
}

// Package document manages the documents flashcards are generated from.
package document

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

type documentRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name, content string, topicID *uuid.UUID) (*domain.Document, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Document, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type flashcardGenerator interface {
	GenerateFlashcards(ctx context.Context, input generation.GenerateInput) (*generation.GenerateResult, error)
}

// Service provides document operations.
type Service struct {
	documents documentRepo
	generator flashcardGenerator
	limits    generation.TextLimits
	log       *slog.Logger
}

// NewService creates a new document service.
func NewService(
	log *slog.Logger,
	documents documentRepo,
	generator flashcardGenerator,
	limits generation.TextLimits,
) *Service {
	if limits.Min <= 0 || limits.Max < limits.Min {
		limits = generation.DefaultTextLimits
	}
	return &Service{
		documents: documents,
		generator: generator,
		limits:    limits,
		log:       log.With("service", "document"),
	}
}

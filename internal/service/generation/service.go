// Package generation turns study text into AI flashcard proposals and stores
// them for review.
package generation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/llm"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

type completionClient interface {
	Chat(ctx context.Context, systemMessage, userMessage string, overrides *llm.Params) (*llm.ChatCompletion, error)
}

type flashcardRepo interface {
	InsertMany(ctx context.Context, userID uuid.UUID, proposals []domain.FlashcardProposal) ([]domain.Flashcard, error)
	DeleteAIByDocument(ctx context.Context, userID, documentID uuid.UUID) (int, error)
}

type documentRepo interface {
	GetContent(ctx context.Context, userID, documentID uuid.UUID) (string, error)
	Exists(ctx context.Context, userID, documentID uuid.UUID) (bool, error)
}

// TextLimits bounds the length, in runes, of text submitted for generation.
type TextLimits struct {
	Min int
	Max int
}

// DefaultTextLimits are used when no limits are configured.
var DefaultTextLimits = TextLimits{Min: 1000, Max: 10000}

// Service generates and regenerates AI flashcards.
type Service struct {
	llm        completionClient
	flashcards flashcardRepo
	documents  documentRepo
	prompt     *Prompt
	limits     TextLimits
	inflight   singleflight.Group
	log        *slog.Logger
}

// NewService creates a new generation service.
func NewService(
	log *slog.Logger,
	llm completionClient,
	flashcards flashcardRepo,
	documents documentRepo,
	prompt *Prompt,
	limits TextLimits,
) *Service {
	if limits.Min <= 0 || limits.Max < limits.Min {
		limits = DefaultTextLimits
	}
	return &Service{
		llm:        llm,
		flashcards: flashcards,
		documents:  documents,
		prompt:     prompt,
		limits:     limits,
		log:        log.With("service", "generation"),
	}
}

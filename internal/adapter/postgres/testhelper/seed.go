package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDocument inserts a document owned by userID and returns it.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Document {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	doc := domain.Document{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Document " + uniqueSuffix(),
		Content:   "Photosynthesis converts light energy into chemical energy stored in glucose.",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO documents (id, user_id, topic_id, name, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		doc.ID, doc.UserID, doc.TopicID, doc.Name, doc.Content, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument: %v", err)
	}
	return doc
}

// FlashcardSeed describes a flashcard row to insert with SeedFlashcard.
type FlashcardSeed struct {
	DocumentID *uuid.UUID
	Source     domain.FlashcardSource
	IsApproved bool
	IsDisabled bool
}

// SeedFlashcard inserts a flashcard owned by userID. An empty Source defaults to ai.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, seed FlashcardSeed) domain.Flashcard {
	t.Helper()

	if seed.Source == "" {
		seed.Source = domain.FlashcardSourceAI
	}
	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Flashcard{
		ID:            uuid.New(),
		UserID:        userID,
		DocumentID:    seed.DocumentID,
		FrontOriginal: "Question " + suffix,
		BackOriginal:  "Answer " + suffix,
		Source:        seed.Source,
		IsApproved:    seed.IsApproved,
		IsDisabled:    seed.IsDisabled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO flashcards (id, user_id, document_id, front_original, back_original,
		                         source, is_approved, is_disabled, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		card.ID, card.UserID, card.DocumentID, card.FrontOriginal, card.BackOriginal,
		string(card.Source), card.IsApproved, card.IsDisabled, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard: %v", err)
	}
	return card
}

// CountFlashcards returns how many flashcards of the given source belong to documentID.
func CountFlashcards(t *testing.T, pool *pgxpool.Pool, documentID uuid.UUID, source domain.FlashcardSource) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM flashcards WHERE document_id = $1 AND source = $2`,
		documentID, string(source),
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountFlashcards: %v", err)
	}
	return n
}

package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

type flashcardResponse struct {
	ID                     uuid.UUID              `json:"id"`
	DocumentID             *uuid.UUID             `json:"document_id,omitempty"`
	TopicID                *uuid.UUID             `json:"topic_id,omitempty"`
	Front                  string                 `json:"front"`
	Back                   string                 `json:"back"`
	FrontOriginal          string                 `json:"front_original"`
	BackOriginal           string                 `json:"back_original"`
	FrontModified          *string                `json:"front_modified,omitempty"`
	BackModified           *string                `json:"back_modified,omitempty"`
	Source                 domain.FlashcardSource `json:"source"`
	IsApproved             bool                   `json:"is_approved"`
	IsDisabled             bool                   `json:"is_disabled"`
	ModificationPercentage int                    `json:"modification_percentage"`
	CreatedAt              time.Time              `json:"created_at"`
	UpdatedAt              time.Time              `json:"updated_at"`
}

func toFlashcardResponse(f *domain.Flashcard) flashcardResponse {
	return flashcardResponse{
		ID:                     f.ID,
		DocumentID:             f.DocumentID,
		TopicID:                f.TopicID,
		Front:                  f.Front(),
		Back:                   f.Back(),
		FrontOriginal:          f.FrontOriginal,
		BackOriginal:           f.BackOriginal,
		FrontModified:          f.FrontModified,
		BackModified:           f.BackModified,
		Source:                 f.Source,
		IsApproved:             f.IsApproved,
		IsDisabled:             f.IsDisabled,
		ModificationPercentage: f.ModificationPercentage,
		CreatedAt:              f.CreatedAt,
		UpdatedAt:              f.UpdatedAt,
	}
}

func toFlashcardResponses(cards []domain.Flashcard) []flashcardResponse {
	out := make([]flashcardResponse, len(cards))
	for i := range cards {
		out[i] = toFlashcardResponse(&cards[i])
	}
	return out
}

// proposalsOrEmpty keeps empty lists as [] in JSON.
func proposalsOrEmpty(p []domain.FlashcardProposal) []domain.FlashcardProposal {
	if p == nil {
		return []domain.FlashcardProposal{}
	}
	return p
}

type documentResponse struct {
	ID        uuid.UUID  `json:"id"`
	TopicID   *uuid.UUID `json:"topic_id,omitempty"`
	Name      string     `json:"name"`
	Content   string     `json:"content,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toDocumentResponse(d *domain.Document) documentResponse {
	return documentResponse{
		ID:        d.ID,
		TopicID:   d.TopicID,
		Name:      d.Name,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

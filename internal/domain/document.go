package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is a user-supplied body of text that flashcards are generated from.
// Deleting a document deletes its flashcards.
type Document struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TopicID   *uuid.UUID
	Name      string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

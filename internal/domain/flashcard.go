package domain

import (
	"time"

	"github.com/google/uuid"
)

// Length bounds for flashcard sides, counted in runes.
const (
	MaxFrontLength = 200
	MaxBackLength  = 500
)

// FlashcardProposal is an AI-generated flashcard candidate that has not been
// persisted yet and carries no durable identifier.
type FlashcardProposal struct {
	FrontOriginal string          `json:"front_original"`
	BackOriginal  string          `json:"back_original"`
	TopicID       *uuid.UUID      `json:"topic_id,omitempty"`
	DocumentID    *uuid.UUID      `json:"document_id,omitempty"`
	Source        FlashcardSource `json:"source"`
	IsApproved    bool            `json:"is_approved"`
}

// Flashcard is a persisted flashcard.
// FrontOriginal, BackOriginal and Source never change after creation.
type Flashcard struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	DocumentID             *uuid.UUID
	TopicID                *uuid.UUID
	FrontOriginal          string
	BackOriginal           string
	FrontModified          *string
	BackModified           *string
	Source                 FlashcardSource
	IsApproved             bool
	IsDisabled             bool
	ModificationPercentage int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Front returns the text currently shown on the front side.
func (f *Flashcard) Front() string {
	if f.FrontModified != nil {
		return *f.FrontModified
	}
	return f.FrontOriginal
}

// Back returns the text currently shown on the back side.
func (f *Flashcard) Back() string {
	if f.BackModified != nil {
		return *f.BackModified
	}
	return f.BackOriginal
}

// IsPending reports whether the flashcard still awaits approval.
func (f *Flashcard) IsPending() bool {
	return !f.IsApproved && !f.IsDisabled
}

// Original returns the immutable content the flashcard was created with.
func (f *Flashcard) Original() FlashcardOriginal {
	return FlashcardOriginal{FrontOriginal: f.FrontOriginal, BackOriginal: f.BackOriginal}
}

// ManualFlashcard holds a user-authored flashcard before it is persisted.
type ManualFlashcard struct {
	FrontOriginal string
	BackOriginal  string
	DocumentID    *uuid.UUID
	TopicID       *uuid.UUID
}

// FlashcardUpdate is the set of mutable fields a user edit may change.
// Nil fields are left untouched.
type FlashcardUpdate struct {
	FrontModified          *string
	BackModified           *string
	ModificationPercentage *int
	IsDisabled             *bool
}

// FlashcardFilter narrows flashcard listings.
type FlashcardFilter struct {
	Source          *FlashcardSource
	IsApproved      *bool
	IncludeDisabled bool
}
